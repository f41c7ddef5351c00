package skillz

import (
	"context"

	"github.com/devanshioza/skillfolio/genai"
)

const mentorFeedbackInstructions = `You are an AI mentor providing personalized feedback to students based on their weekly activity and skills.

Provide constructive feedback and improvement tips to help the student enhance their skills and showcase them effectively.`

// MentorFeedbackInput is the structured input of the weekly feedback flow.
type MentorFeedbackInput struct {
	WeeklyActivity string   `json:"weeklyActivity" jsonschema:"description=Description of the student's activities during the week."`
	Skills         []string `json:"skills" jsonschema:"description=List of skills the student possesses."`
}

type mentorFeedbackOutput struct {
	Feedback string `json:"feedback" jsonschema:"description=Personalized feedback and improvement tips for the student." validate:"required"`
}

// MentorFeedback generates personalized feedback from a student's weekly
// activity and current skill list.
func MentorFeedback(ctx context.Context, client genai.LLMClient, weeklyActivity string, skills []string) (string, error) {
	out, err := genai.Infer[mentorFeedbackOutput](ctx, client, mentorFeedbackInstructions, MentorFeedbackInput{
		WeeklyActivity: weeklyActivity,
		Skills:         skills,
	})
	if err != nil {
		return "", err
	}
	return out.Feedback, nil
}
