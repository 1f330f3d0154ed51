package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// jsonSchema is the subset of JSON Schema the providers need to translate.
type jsonSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
	Items       *jsonSchema            `json:"items,omitempty"`
	Properties  map[string]*jsonSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

func parseSchema(raw json.RawMessage) (*jsonSchema, error) {
	var s jsonSchema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("invalid response schema: %w", err)
	}
	return &s, nil
}

// withSchemaInstructions is used by providers without native structured output.
func withSchemaInstructions(req Request) string {
	if len(req.Schema) == 0 {
		return req.Prompt
	}
	var b strings.Builder
	b.WriteString(req.Prompt)
	b.WriteString("\n\nRespond with a single JSON object only, no prose and no markdown, matching this JSON Schema:\n")
	b.Write(req.Schema)
	b.WriteString("\n")
	return b.String()
}
