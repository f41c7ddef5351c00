package genai

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when the model produced no usable text.
// Callers with a safe degraded behavior (the mentor's fixed fallback
// message) recover it locally; everyone else treats it as a failed call.
var ErrEmptyResponse = errors.New("model returned no usable text")

// SchemaViolationError is returned when model output does not parse or
// validate against the declared output shape. The raw text is kept so the
// failure can be diagnosed; the caller never receives a partially-typed
// value alongside it.
type SchemaViolationError struct {
	Raw string
	Err error
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("model output violates the declared schema: %v", e.Err)
}

func (e *SchemaViolationError) Unwrap() error {
	return e.Err
}

// ToolError is returned when a capability the model requested could not be
// executed, or the model requested one that was never registered.
type ToolError struct {
	Capability string
	Err        error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("capability %q failed: %v", e.Capability, e.Err)
}

func (e *ToolError) Unwrap() error {
	return e.Err
}
