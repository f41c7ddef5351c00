package genai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

////////////////////////////////////////////////////////////////////////

// validate enforces the structural constraints declared on output types
// (rating bounds, non-empty fields). Model output is never trusted blindly.
var validate = validator.New(validator.WithRequiredStructEnabled())

// inferPromptFormat glues the stage instructions, the structured input and
// the reflected output schema into one prompt. The same schema value that
// drives post-parse validation documents the output shape to the model.
const inferPromptFormat = `%s

Input:
%s

Your final output must be a single valid JSON value that strictly follows this JSON Schema. Do not include any text or formatting outside of the JSON value.

%s`

////////////////////////////////////////////////////////////////////////

// Infer renders the instruction template against the structured input,
// sends it to the model, and parses the response into a value of type Out.
// The result either validates against Out's declared schema or the call
// fails with a *SchemaViolationError; a partially-typed or unchecked value
// is never returned. One network call per invocation, no retries.
//
// Out must be a struct type carrying json and validate tags.
func Infer[Out any](ctx context.Context, client LLMClient, instructions string, input any) (Out, error) {
	var out Out

	inputJSON, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return out, fmt.Errorf("failed to marshal inference input: %w", err)
	}

	schemaJSON, err := SchemaJSON(&out)
	if err != nil {
		return out, fmt.Errorf("failed to render output schema: %w", err)
	}

	prompt := fmt.Sprintf(inferPromptFormat, instructions, inputJSON, schemaJSON)

	text, err := client.Generate(ctx, GenerateRequest{
		History:    []Message{{Role: RoleUser, Content: prompt}},
		JSONOutput: true,
	})
	if err != nil {
		return out, fmt.Errorf("inference call failed: %w", err)
	}

	raw := StripFences(text)
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		var zero Out
		return zero, &SchemaViolationError{Raw: raw, Err: err}
	}

	if err := validate.Struct(out); err != nil {
		var zero Out
		return zero, &SchemaViolationError{Raw: raw, Err: err}
	}

	return out, nil
}

// StripFences removes markdown code fences some models wrap around JSON
// output.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
