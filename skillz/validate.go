package skillz

import (
	"context"
	"fmt"
	"strings"

	"github.com/devanshioza/skillfolio/genai"
)

////////////////////////////////////////////////////////////////////////

const validateSkillsInstructions = `You are an AI skill validator. For every skill in the input list, rate the student's proficiency from 1 to 5 stars based on the provided proof, and state the evidence that justifies the rating.

Produce exactly one validated record per input skill, keeping the input order. Do not drop, merge or invent skills.`

const validateSkillInstructions = `You are an AI skill validator. Rate the student's skill from 1 to 5 stars based on the provided proof. Provide personalized feedback and improvement tips.`

// ValidateSkillsInput is the structured input of the batch validation stage.
type ValidateSkillsInput struct {
	Skills []string `json:"skills" jsonschema:"description=The list of skills to be validated."`
	Proof  string   `json:"proof" jsonschema:"description=The context (like URLs to profiles or scraped content) to use for validation."`
}

type validateSkillsOutput struct {
	ValidatedSkills []SkillRecord `json:"validatedSkills" jsonschema:"description=The list of validated and rated skills." validate:"dive"`
}

type validateSkillInput struct {
	Skill string `json:"skill"`
	Proof string `json:"proof"`
}

// SkillAssessment is the single-skill validation result.
type SkillAssessment struct {
	Rating   int    `json:"rating" jsonschema:"minimum=1,maximum=5,description=The proficiency rating from 1 to 5 stars." validate:"min=1,max=5"`
	Feedback string `json:"feedback" jsonschema:"description=Personalized feedback and improvement tips." validate:"required"`
}

////////////////////////////////////////////////////////////////////////

// ValidateSkills turns (skill, proof) pairs into rated, justified skill
// records. The model must return exactly one record per input skill; a
// missing, extra or unknown record is a pipeline error, never silently
// dropped or duplicated. An empty skill list returns an empty slice
// without a model call.
func ValidateSkills(ctx context.Context, client genai.LLMClient, skills []string, proof string) ([]SkillRecord, error) {
	if len(skills) == 0 {
		return []SkillRecord{}, nil
	}

	out, err := genai.Infer[validateSkillsOutput](ctx, client, validateSkillsInstructions, ValidateSkillsInput{
		Skills: skills,
		Proof:  proof,
	})
	if err != nil {
		return nil, err
	}

	if err := checkOneRecordPerSkill(skills, out.ValidatedSkills); err != nil {
		return nil, err
	}
	return out.ValidatedSkills, nil
}

// ValidateSkill rates a single skill against the supplied proof.
func ValidateSkill(ctx context.Context, client genai.LLMClient, skill, proof string) (SkillAssessment, error) {
	return genai.Infer[SkillAssessment](ctx, client, validateSkillInstructions, validateSkillInput{
		Skill: skill,
		Proof: proof,
	})
}

// checkOneRecordPerSkill enforces the batch contract: one record per input
// skill, matched by name (case-insensitive), nothing dropped or duplicated.
func checkOneRecordPerSkill(skills []string, records []SkillRecord) error {
	if len(records) != len(skills) {
		return fmt.Errorf("skill validation returned %d records for %d skills", len(records), len(skills))
	}

	remaining := make(map[string]int, len(skills))
	for _, s := range skills {
		remaining[strings.ToLower(s)]++
	}
	for _, r := range records {
		key := strings.ToLower(r.Name)
		if remaining[key] == 0 {
			return fmt.Errorf("skill validation returned a record for unexpected skill %q", r.Name)
		}
		remaining[key]--
	}
	return nil
}
