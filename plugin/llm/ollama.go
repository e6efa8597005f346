package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/eventsense/internal/apperr"
)

// ollamaService talks to the Ollama generate API. The wire contract is
// request {model, prompt, stream:false} and response {response}.
type ollamaService struct {
	endpoint string
	model    string
	client   *http.Client
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func newOllamaService(cfg *Config) (Service, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("ollama endpoint is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("ollama model is required")
	}
	return &ollamaService{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		client:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Generate performs a single non-streaming generate call. Failures are never
// retried here; callers decide what to surface.
func (s *ollamaService) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ollamaGenerateRequest{
		Model:  s.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", errors.Wrap(err, "marshaling generate request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "building generate request")
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperr.ModelUnavailable("calling model backend", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain a little of the body for the log line, then discard.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", apperr.ModelUnavailable(
			errors.Errorf("model backend returned %d: %s", resp.StatusCode, snippet).Error(), nil)
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", apperr.ModelUnavailable("decoding model response", err)
	}

	slog.Debug("model generate completed",
		"model", s.model,
		"duration", time.Since(start).String())
	return out.Response, nil
}
