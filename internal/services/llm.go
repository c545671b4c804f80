package services

import (
	"fmt"
	"strings"

	"github.com/aliyacapital/seriesdash/internal/config"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

var defaultModels = map[string]string{
	ProviderOpenAI:    "gpt-4o",
	ProviderAnthropic: "claude-sonnet-4-5",
	ProviderGemini:    "gemini-2.5-flash",
}

// NewCompleter builds the completer for the configured provider.
func NewCompleter(cfg config.LLMConfig) (Completer, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Provider))
	if provider == "" {
		provider = ProviderOpenAI
	}
	model := cfg.Model
	if model == "" || (provider != ProviderOpenAI && model == defaultModels[ProviderOpenAI]) {
		model = defaultModels[provider]
	}

	switch provider {
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai api key is not configured")
		}
		return NewOpenAICompleter(cfg.OpenAIAPIKey, model, cfg.Temperature, cfg.MaxTokens), nil
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("anthropic api key is not configured")
		}
		return NewAnthropicCompleter(cfg.AnthropicAPIKey, model, cfg.Temperature, cfg.MaxTokens), nil
	case ProviderGemini:
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("gemini api key is not configured")
		}
		return &GeminiCompleter{apiKey: cfg.GeminiAPIKey, model: model, temperature: cfg.Temperature, maxTokens: cfg.MaxTokens}, nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
}
