// Package skillz implements the skill-profile inference pipeline: skill
// suggestion, skill validation, the onboarding orchestrator, and the
// conversational mentor. Every stage is a pure function over injected
// collaborators; the pipeline itself holds no persistent state.
package skillz

// SkillRecord is a named competency with a 1-5 rating and the evidence
// that justifies it. Records are immutable once produced; a re-run of the
// analysis supersedes them, it never mutates them.
type SkillRecord struct {
	Name     string `json:"name" jsonschema:"description=The name of the skill." validate:"required"`
	Rating   int    `json:"rating" jsonschema:"minimum=1,maximum=5,description=The proficiency rating of the skill from 1 (Beginner) to 5 (Expert)." validate:"min=1,max=5"`
	Evidence string `json:"evidence" jsonschema:"description=The specific evidence or project that justifies the rating." validate:"required"`
}

// SkillProfile is the consolidated output of skill inference for one user.
// Skills are unique by name in model output order.
type SkillProfile struct {
	Skills         []SkillRecord `json:"skills" jsonschema:"description=A list of skills identified and rated from the user's profiles." validate:"dive"`
	ProfileSummary string        `json:"profileSummary" jsonschema:"description=A concise 2-3 sentence summary of the user's professional profile."`
	OverallRating  float64       `json:"overallRating" jsonschema:"minimum=1,maximum=5,description=An overall rating of the user's entire profile from 1 to 5." validate:"min=1,max=5"`
}

// UserProfileContext is the subset of a stored profile injected into the
// mentor's operating instructions. Read-only; sourced from the profile
// directory by the lookup capability.
type UserProfileContext struct {
	Name           string        `json:"name"`
	Branch         string        `json:"branch,omitempty"`
	Year           int           `json:"year,omitempty"`
	OverallRating  float64       `json:"overallRating,omitempty"`
	ProfileSummary string        `json:"profileSummary,omitempty"`
	Skills         []SkillRecord `json:"skills,omitempty"`
}
