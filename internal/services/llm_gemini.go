package services

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/genai"
)

// GeminiCompleter calls the Gemini API. The client is created on first use
// because construction needs a context.
type GeminiCompleter struct {
	apiKey      string
	baseURL     string
	model       string
	temperature float64
	maxTokens   int

	once   sync.Once
	client *genai.Client
	err    error
}

func (c *GeminiCompleter) Provider() string { return ProviderGemini }
func (c *GeminiCompleter) Model() string    { return c.model }

func (c *GeminiCompleter) init(ctx context.Context) error {
	c.once.Do(func() {
		cfg := &genai.ClientConfig{APIKey: c.apiKey, Backend: genai.BackendGeminiAPI}
		if c.baseURL != "" {
			cfg.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
		}
		c.client, c.err = genai.NewClient(ctx, cfg)
	})
	return c.err
}

func (c *GeminiCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	if err := c.init(ctx); err != nil {
		return "", fmt.Errorf("failed to initialize gemini client: %w", err)
	}
	temp := float32(c.temperature)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		Temperature:       &temp,
	}
	if c.maxTokens > 0 {
		cfg.MaxOutputTokens = int32(c.maxTokens)
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(user), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini completion failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from gemini model %s", c.model)
	}
	return resp.Text(), nil
}
