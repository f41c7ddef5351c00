package genai

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Reflect builds a self-contained JSON Schema for v's type. The schema is
// used both to describe the desired output shape to the model and to
// declare capability parameters, so it is inlined (no $ref indirection)
// and carries no draft header.
func Reflect(v any) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)
	schema.Version = ""
	return schema
}

// SchemaJSON renders the reflected schema of v as indented JSON, ready to
// be embedded in a prompt.
func SchemaJSON(v any) (string, error) {
	out, err := json.MarshalIndent(Reflect(v), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
