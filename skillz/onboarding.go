package skillz

import (
	"context"
	"strings"

	"github.com/devanshioza/skillfolio/genai"
	"github.com/devanshioza/skillfolio/scraper"
)

////////////////////////////////////////////////////////////////////////

const onboardingInstructions = `You are an expert talent evaluator for a university program. Your task is to analyze a student's online profiles and generate a structured skill profile.

The input carries the student's profile URLs and, when available, the scraped text content of the GitHub profile.

Based on the information, perform the following actions:
1. Identify Skills: detect technical skills (e.g. "TypeScript", "Python", "React", "Docker").
2. Rate Skills: for each skill, assign a proficiency rating from 1 (Beginner) to 5 (Expert) based on the likely complexity and number of projects or experiences shown.
3. Provide Evidence: briefly state the reason for each rating (e.g. "Found in multiple full-stack projects on GitHub").
4. Write a Summary: compose a 2-3 sentence professional summary of the student's key strengths.
5. Give an Overall Rating: assign an overall profile rating from 1 to 5, representing your holistic assessment of their readiness for internships or advanced projects.

If no profile information is available, return an empty skill list, a short note as the summary, and an overall rating of 1.`

// OnboardingInput is the structured input embedded in the one-shot
// onboarding prompt.
type OnboardingInput struct {
	GithubURL     string `json:"githubUrl,omitempty"`
	LinkedinURL   string `json:"linkedinUrl,omitempty"`
	LeetcodeURL   string `json:"leetcodeUrl,omitempty"`
	GithubContent string `json:"githubContent,omitempty"`
}

////////////////////////////////////////////////////////////////////////

// Analyzer is the onboarding orchestrator. It sequences the scraper and
// one combined inference call into a consolidated SkillProfile.
type Analyzer struct {
	client  genai.LLMClient
	scraper *scraper.Scraper
}

// NewAnalyzer creates an Analyzer with an explicit model client and
// scraper; nothing is read from global state.
func NewAnalyzer(client genai.LLMClient, sc *scraper.Scraper) *Analyzer {
	return &Analyzer{client: client, scraper: sc}
}

// BuildProfile analyzes the given profile URLs and returns a consolidated
// skill profile in one combined inference call: skills with ratings and
// evidence, a short summary, and one overall rating.
//
// All URLs absent is valid; the call still executes and yields a minimal
// profile. Rejecting an empty submission is the caller's job.
func (a *Analyzer) BuildProfile(ctx context.Context, githubURL, linkedinURL, leetcodeURL string) (SkillProfile, error) {
	var githubContent string
	if githubURL != "" && a.scraper != nil {
		githubContent = a.scraper.Scrape(ctx, githubURL)
	}

	profile, err := genai.Infer[SkillProfile](ctx, a.client, onboardingInstructions, OnboardingInput{
		GithubURL:     githubURL,
		LinkedinURL:   linkedinURL,
		LeetcodeURL:   leetcodeURL,
		GithubContent: githubContent,
	})
	if err != nil {
		return SkillProfile{}, err
	}

	profile.Skills = dedupeByName(profile.Skills)
	return profile, nil
}

// SuggestFromProfiles scrapes the GitHub profile and fans out two
// independent suggestion analyses (project/GitHub material vs. other
// public data), merging the de-duplicated result. Used by the standalone
// suggestion flow; BuildProfile never calls it.
func (a *Analyzer) SuggestFromProfiles(ctx context.Context, githubURL string, projectDescriptions []string, publicData string) ([]string, error) {
	var githubContent string
	if githubURL != "" && a.scraper != nil {
		githubContent = a.scraper.Scrape(ctx, githubURL)
	}
	return SuggestFromSources(ctx, a.client, projectDescriptions, githubContent, publicData)
}

// dedupeByName keeps the first record for each skill name, preserving
// model output order.
func dedupeByName(records []SkillRecord) []SkillRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]SkillRecord, 0, len(records))
	for _, r := range records {
		key := strings.ToLower(r.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}
