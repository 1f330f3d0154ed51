package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/mdm/internal/config"
)

var testSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"label": {"type": "string", "description": "a label"},
		"score": {"type": "number"},
		"ok": {"type": "boolean"},
		"tags": {"type": "array", "items": {"type": "string", "enum": ["a", "b"]}}
	},
	"required": ["label", "score"]
}`)

func TestNewClient(t *testing.T) {
	ctx := context.Background()

	c, err := NewClient(ctx, config.LLMConfig{Provider: "OpenAI", Model: "gpt-4o-mini", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(ctx, config.LLMConfig{Provider: "claude", Model: "claude-3-5-haiku-latest", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, c)

	_, err = NewClient(ctx, config.LLMConfig{Provider: "watson"})
	assert.ErrorContains(t, err, "unsupported llm provider")
}

func TestOllamaBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:11434/v1", ollamaBaseURL(""))
	assert.Equal(t, "http://ollama:11434/v1", ollamaBaseURL("http://ollama:11434/"))
	assert.Equal(t, "http://ollama:11434/v1", ollamaBaseURL("http://ollama:11434/v1"))
}

func TestWithSchemaInstructions(t *testing.T) {
	assert.Equal(t, "plain", withSchemaInstructions(Request{Prompt: "plain"}))

	out := withSchemaInstructions(Request{Prompt: "Do it.", Schema: testSchema})
	assert.Contains(t, out, "Do it.")
	assert.Contains(t, out, "JSON Schema")
	assert.Contains(t, out, `"required": ["label", "score"]`)
}

func TestToGenaiSchema(t *testing.T) {
	s, err := parseSchema(testSchema)
	require.NoError(t, err)

	g := toGenaiSchema(s)
	assert.Equal(t, genai.TypeObject, g.Type)
	assert.Equal(t, []string{"label", "score"}, g.Required)
	assert.Equal(t, genai.TypeString, g.Properties["label"].Type)
	assert.Equal(t, "a label", g.Properties["label"].Description)
	assert.Equal(t, genai.TypeNumber, g.Properties["score"].Type)
	assert.Equal(t, genai.TypeBoolean, g.Properties["ok"].Type)
	assert.Equal(t, genai.TypeArray, g.Properties["tags"].Type)
	assert.Equal(t, []string{"a", "b"}, g.Properties["tags"].Items.Enum)

	_, err = parseSchema(json.RawMessage(`not json`))
	assert.Error(t, err)
}

func TestOpenAIClient_Generate(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{\"label\":\"ok\",\"score\":1}"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", "gpt-4o-mini", srv.URL, 5*time.Second)
	out, err := c.Generate(context.Background(), Request{Name: "probe", Prompt: "hi", Schema: testSchema})
	require.NoError(t, err)
	assert.Equal(t, `{"label":"ok","score":1}`, out)

	format, ok := body["response_format"].(map[string]any)
	require.True(t, ok, "response_format must be sent when a schema is given")
	assert.Equal(t, "json_schema", format["type"])
	assert.Equal(t, "probe", format["json_schema"].(map[string]any)["name"])
}

func TestOpenAIClient_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","choices":[]}`)
	}))
	defer srv.Close()

	c := NewOpenAIClient("k", "gpt-4o-mini", srv.URL, 0)
	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorContains(t, err, "no response choices")
}

func TestClaudeClient_Generate(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		var req struct {
			Messages []struct {
				Content []struct {
					Text string `json:"text"`
				} `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		prompt = req.Messages[0].Content[0].Text

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude","content":[{"type":"text","text":"{\"label\":\"ok\",\"score\":2}"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`)
	}))
	defer srv.Close()

	c := NewClaudeClient("k", "claude-3-5-haiku-latest", srv.URL, 5*time.Second)
	out, err := c.Generate(context.Background(), Request{Prompt: "hi", Schema: testSchema})
	require.NoError(t, err)
	assert.Equal(t, `{"label":"ok","score":2}`, out)
	assert.Contains(t, prompt, "JSON Schema")
}

func newGeminiServer(t *testing.T, response string, body *map[string]any) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-1.5-flash:generateContent"), r.URL.Path)
		if body != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(body))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	c, err := NewGeminiClient(context.Background(), "k", "gemini-1.5-flash", srv.URL, 5*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestGeminiClient_Generate(t *testing.T) {
	var body map[string]any
	c := newGeminiServer(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"label\":"},{"text":"\"ok\",\"score\":3}"}]},"finishReason":1}]}`, &body)

	out, err := c.Generate(context.Background(), Request{Prompt: "hi", Schema: testSchema})
	require.NoError(t, err)
	assert.Equal(t, `{"label":"ok","score":3}`, out)

	genCfg, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok, "generationConfig must be sent when a schema is given")
	assert.Equal(t, "application/json", genCfg["responseMimeType"])
	assert.NotNil(t, genCfg["responseSchema"])
}

func TestGeminiClient_NoContent(t *testing.T) {
	c := newGeminiServer(t, `{"candidates":[{"finishReason":1}]}`, nil)
	_, err := c.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorContains(t, err, "no response candidates or content")

	c = newGeminiServer(t, `{"candidates":[]}`, nil)
	_, err = c.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorContains(t, err, "no response candidates or content")
}
