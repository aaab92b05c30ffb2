package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrSummarize marks a failed or empty narrative generation. The report is
// still produced; callers annotate the output instead of aborting.
var ErrSummarize = errors.New("summarize failed")

// Client is the text-generation capability: prompt in, narrative out.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Provider identifies a text-generation backend.
type Provider string

const (
	ProviderOllama    Provider = "ollama"
	ProviderAnthropic Provider = "anthropic"
	ProviderGemini    Provider = "gemini"
)

// Config holds what is needed to construct a client.
type Config struct {
	Provider Provider
	Model    string
	BaseURL  string
	APIKey   string
}

// NewClient creates a client for the configured provider.
func NewClient(cfg Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOllama:
		baseURL := cfg.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434"
		}
		model := cfg.Model
		if model == "" {
			model = "llama3.2"
		}
		return NewOllamaClient(baseURL, model), nil
	case ProviderAnthropic:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Anthropic API key is required")
		}
		return NewAnthropicClient(cfg.APIKey, cfg.Model), nil
	case ProviderGemini:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("Gemini API key is required")
		}
		model := cfg.Model
		if model == "" {
			model = "gemini-2.0-flash"
		}
		return NewGeminiClient(cfg.APIKey, model), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
