package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"time"
)

// OllamaClient uses a local Ollama instance for completions.
type OllamaClient struct {
	baseURL string
	model   string
	client  *http.Client
}

type ollamaChatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type ollamaChatResponse struct {
	Message struct {
		Content string `json:"content"`
	} `json:"message"`
}

// NewOllamaClient creates a client for Ollama's chat API.
func NewOllamaClient(model string) *OllamaClient {
	baseURL := os.Getenv("OLLAMA_HOST")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "llama3.2"
	}
	return &OllamaClient{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *OllamaClient) Complete(ctx context.Context, prompt, system string) (string, error) {
	body, _ := json.Marshal(ollamaChatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
	})
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", &ServiceError{Kind: KindNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ServiceError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		return "", &ServiceError{Kind: classify(resp.StatusCode), Status: resp.StatusCode, Body: string(b)}
	}

	var result ollamaChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", &ServiceError{Kind: KindMalformedResponse, Status: resp.StatusCode, Err: err}
	}
	if result.Message.Content == "" {
		return "", &ServiceError{Kind: KindMalformedResponse, Status: resp.StatusCode, Body: "no message content in response"}
	}
	return result.Message.Content, nil
}

// NewFromEnv creates a client from environment variables.
// BOLT_NOTES_PROVIDER: "openai" | "ollama" (default "openai")
// BOLT_NOTES_MODEL: model name
// BOLT_NOTES_API_URL: base URL override for the openai provider
// OPENAI_API_KEY: for the openai provider
func NewFromEnv() Client {
	provider := os.Getenv("BOLT_NOTES_PROVIDER")
	model := os.Getenv("BOLT_NOTES_MODEL")

	switch provider {
	case "ollama":
		return NewOllamaClient(model)
	default:
		url := os.Getenv("BOLT_NOTES_API_URL")
		key := os.Getenv("OPENAI_API_KEY")
		return NewOpenAIClient(url, key, model)
	}
}
