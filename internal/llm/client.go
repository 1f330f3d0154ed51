package llm

import (
	"context"
	"encoding/json"
)

// Request is one structured generation call. Schema is the JSON Schema the
// response is expected to satisfy; providers that support constrained output
// pass it through, the rest append it to the prompt.
type Request struct {
	Name   string
	Prompt string
	Schema json.RawMessage
}

type LLMClient interface {
	Generate(ctx context.Context, req Request) (string, error)
}
