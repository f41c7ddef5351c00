package skillz

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/devanshioza/skillfolio/genai"
)

////////////////////////////////////////////////////////////////////////

const mentorSystemInstructions = `You are a helpful and friendly AI Mentor for university students. Your goal is to provide personalized guidance, career advice, and project suggestions.

You have access to a capability called 'getStudentProfile' which fetches the complete profile of the student you are talking to, including their skills, academic year, branch, and overall rating.

ALWAYS use 'getStudentProfile' BEFORE answering any question that requires personal context, such as giving advice, suggesting projects, or analyzing skills. Do not ask the student for this information; retrieve it yourself.

Engage in a natural, supportive, and encouraging conversation. Keep your responses concise and easy to understand. Use markdown for formatting when appropriate.`

// FallbackReply is returned to the chat surface when the model produced no
// usable text. The chat UI never sees an error for that case.
const FallbackReply = "I'm sorry, I couldn't generate a response. Could you please try rephrasing your question?"

////////////////////////////////////////////////////////////////////////

// ProfileDirectory looks up the stored profile context for a student.
// Implemented by the application's store; the mentor never touches the
// database directly.
type ProfileDirectory interface {
	GetStudentContext(ctx context.Context, userID string) (UserProfileContext, error)
}

// Mentor answers one chat turn at a time using the student's stored
// profile as context via a model-invocable lookup capability. Stateless
// across turns: each call receives the entire prior history and returns
// exactly one new trailing message.
type Mentor struct {
	client   genai.LLMClient
	profiles ProfileDirectory
}

// NewMentor creates a Mentor over the given model client and profile
// directory.
func NewMentor(client genai.LLMClient, profiles ProfileDirectory) *Mentor {
	return &Mentor{client: client, profiles: profiles}
}

// Reply produces the mentor's next message for the given student and
// history. The student identifier travels out-of-band in the lookup
// capability, never as free text the model could confuse.
//
// An empty model response degrades to FallbackReply; a failed profile
// lookup surfaces as a *genai.ToolError so the caller knows the
// personalization step failed instead of silently proceeding without
// context.
func (m *Mentor) Reply(ctx context.Context, userID string, history []genai.Message) (genai.Message, error) {
	lookup := genai.Capability{
		Name:        "getStudentProfile",
		Description: "Retrieves the full profile of the student currently interacting with the mentor. Use this to get context about the student's skills, year, branch, and overall rating before providing personalized advice.",
		Invoke: func(ctx context.Context, _ json.RawMessage) (any, error) {
			profile, err := m.profiles.GetStudentContext(ctx, userID)
			if err != nil {
				return nil, fmt.Errorf("failed to retrieve student profile: %w", err)
			}
			return profile, nil
		},
	}

	text, err := m.client.Generate(ctx, genai.GenerateRequest{
		System:       mentorSystemInstructions,
		History:      history,
		Capabilities: []genai.Capability{lookup},
	})
	if err != nil {
		if errors.Is(err, genai.ErrEmptyResponse) {
			return genai.Message{Role: genai.RoleModel, Content: FallbackReply}, nil
		}
		return genai.Message{}, fmt.Errorf("mentor reply failed: %w", err)
	}

	if strings.TrimSpace(text) == "" {
		return genai.Message{Role: genai.RoleModel, Content: FallbackReply}, nil
	}
	return genai.Message{Role: genai.RoleModel, Content: text}, nil
}
