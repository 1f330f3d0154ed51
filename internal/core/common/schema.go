package common

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is a compiled JSON Schema together with its source document, which is
// what gets handed to the model.
type Schema struct {
	raw      json.RawMessage
	compiled *gojsonschema.Schema
}

func NewSchema(raw string) (*Schema, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}
	return &Schema{raw: json.RawMessage(raw), compiled: compiled}, nil
}

// MustSchema is for package-level schema literals.
func MustSchema(raw string) *Schema {
	s, err := NewSchema(raw)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Schema) Raw() json.RawMessage {
	return s.raw
}

// Validate checks doc and lists every violation in the returned error.
func (s *Schema) Validate(doc []byte) error {
	result, err := s.compiled.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("failed to validate against schema: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
