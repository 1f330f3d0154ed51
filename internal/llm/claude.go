package llm

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/liushuangls/go-anthropic/v2"
)

const claudeMaxTokens = 1024

type ClaudeClient struct {
	client *anthropic.Client
	model  string
}

func NewClaudeClient(apiKey string, model string, baseURL string, timeout time.Duration) *ClaudeClient {
	var opts []anthropic.ClientOption
	if baseURL != "" {
		opts = append(opts, anthropic.WithBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, anthropic.WithHTTPClient(&http.Client{Timeout: timeout}))
	}

	return &ClaudeClient{
		client: anthropic.NewClient(apiKey, opts...),
		model:  model,
	}
}

// Generate has no native schema mode, so the schema travels in the prompt.
func (c *ClaudeClient) Generate(ctx context.Context, req Request) (string, error) {
	resp, err := c.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model: anthropic.Model(c.model),
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewTextMessageContent(withSchemaInstructions(req)),
				},
			},
		},
		MaxTokens: claudeMaxTokens,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Content) > 0 && resp.Content[0].Text != nil {
		return *resp.Content[0].Text, nil
	}
	return "", fmt.Errorf("no response content")
}
