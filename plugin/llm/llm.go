// Package llm provides pluggable text-generation backends for the
// extraction pipeline. A backend takes a prompt and returns raw text;
// everything else (prompt shape, response parsing) lives in plugin/extract.
package llm

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// Service is the text-generation service interface.
type Service interface {
	// Generate sends the prompt to the backend in non-streaming mode and
	// returns the response text verbatim.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds the backend configuration. Endpoint and model come from the
// environment, never from code.
type Config struct {
	Provider string // "ollama" or "openai"
	Model    string
	Endpoint string // ollama generate URL
	APIKey   string // openai only
	BaseURL  string // openai only
	Timeout  time.Duration
}

// NewService creates a Service for the configured provider.
func NewService(cfg *Config) (Service, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	switch cfg.Provider {
	case "ollama":
		return newOllamaService(cfg)
	case "openai":
		return newOpenAIService(cfg)
	default:
		return nil, errors.Errorf("unsupported LLM provider: %s", cfg.Provider)
	}
}
