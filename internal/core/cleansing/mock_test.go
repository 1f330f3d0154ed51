package cleansing

import (
	"context"

	"github.com/agenthands/mdm/internal/llm"
)

type MockLLMClient struct {
	Response string
	Err      error
	Calls    []llm.Request
}

func (m *MockLLMClient) Generate(ctx context.Context, req llm.Request) (string, error) {
	m.Calls = append(m.Calls, req)
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
