package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"

	"github.com/hrygo/eventsense/internal/apperr"
	"github.com/pkg/errors"
)

// openaiService adapts an OpenAI-compatible chat completion endpoint to the
// prompt-in, text-out contract.
type openaiService struct {
	client *openai.Client
	model  string
}

func newOpenAIService(cfg *Config) (Service, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai API key is required")
	}
	if cfg.Model == "" {
		return nil, errors.New("openai model is required")
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &openaiService{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}, nil
}

func (s *openaiService) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", apperr.ModelUnavailable("calling model backend", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperr.ModelUnavailable("empty completion response", nil)
	}
	return resp.Choices[0].Message.Content, nil
}
