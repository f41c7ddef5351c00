package skillz

import (
	"context"
	"sync"

	"github.com/devanshioza/skillfolio/genai"
)

////////////////////////////////////////////////////////////////////////

const suggestSkillsInstructions = `You are an AI assistant that suggests technical skills based on project descriptions and public profile data.

Analyze the project descriptions and public data in the input and suggest a list of technical skills the student might have (e.g. "TypeScript", "PostgreSQL", "Docker").

Only suggest skill names. Do not rate them and do not invent skills with no support in the input. An empty input yields an empty list.`

// SuggestSkillsInput is the structured input of the suggestion stage.
type SuggestSkillsInput struct {
	ProjectDescriptions []string `json:"projectDescriptions" jsonschema:"description=Descriptions of the student's projects."`
	PublicData          string   `json:"publicData" jsonschema:"description=Public profile data such as scraped page content or profile URLs."`
}

type suggestSkillsOutput struct {
	SuggestedSkills []string `json:"suggestedSkills" jsonschema:"description=A list of suggested skill names."`
}

////////////////////////////////////////////////////////////////////////

// SuggestSkills extracts candidate skill names from project descriptions
// and public data. Duplicates are not removed at this stage; callers
// de-duplicate with MergeSuggestions or a Normalizer before use. Empty
// inputs are valid and may yield an empty list.
func SuggestSkills(ctx context.Context, client genai.LLMClient, projectDescriptions []string, publicData string) ([]string, error) {
	out, err := genai.Infer[suggestSkillsOutput](ctx, client, suggestSkillsInstructions, SuggestSkillsInput{
		ProjectDescriptions: projectDescriptions,
		PublicData:          publicData,
	})
	if err != nil {
		return nil, err
	}
	if out.SuggestedSkills == nil {
		return []string{}, nil
	}
	return out.SuggestedSkills, nil
}

// MergeSuggestions concatenates independent suggestion lists and removes
// duplicates by skill name, preserving first-seen order. The result is
// the same set regardless of call order.
func MergeSuggestions(lists ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)
	for _, list := range lists {
		for _, skill := range list {
			if _, ok := seen[skill]; ok {
				continue
			}
			seen[skill] = struct{}{}
			merged = append(merged, skill)
		}
	}
	return merged
}

// SuggestFromSources runs two independent suggestion analyses over
// disjoint inputs concurrently and merges the results. This is the one
// concurrency point of the pipeline: the two calls share nothing, so
// their results combine by simple concatenation plus deduplication.
func SuggestFromSources(ctx context.Context, client genai.LLMClient, projectDescriptions []string, githubContent, publicData string) ([]string, error) {
	var (
		wg         sync.WaitGroup
		fromGithub []string
		fromPublic []string
		errGithub  error
		errPublic  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fromGithub, errGithub = SuggestSkills(ctx, client, projectDescriptions, githubContent)
	}()
	go func() {
		defer wg.Done()
		fromPublic, errPublic = SuggestSkills(ctx, client, nil, publicData)
	}()
	wg.Wait()

	if errGithub != nil {
		return nil, errGithub
	}
	if errPublic != nil {
		return nil, errPublic
	}

	return MergeSuggestions(fromGithub, fromPublic), nil
}
