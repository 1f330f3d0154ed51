package core

import (
	"context"
	"strings"

	"github.com/agenthands/mdm/internal/llm"
)

// MockLLM answers by request name so one double can serve both flows.
type MockLLM struct {
	Responses map[string]string
	Prompts   []string
}

func (m *MockLLM) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.Prompts = append(m.Prompts, req.Prompt)
	for name, resp := range m.Responses {
		if strings.EqualFold(name, req.Name) {
			return resp, nil
		}
	}
	return "", nil
}

type closingLLM struct {
	MockLLM
	closed int
	err    error
}

func (c *closingLLM) Close() error {
	c.closed++
	return c.err
}
