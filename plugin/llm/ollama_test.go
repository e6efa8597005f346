package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrygo/eventsense/internal/apperr"
)

func TestOllamaGenerateWireFormat(t *testing.T) {
	var received ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"response": `{"summary":"Lunch"}`})
	}))
	defer srv.Close()

	svc, err := NewService(&Config{
		Provider: "ollama",
		Endpoint: srv.URL,
		Model:    "llama3.2:latest",
	})
	require.NoError(t, err)

	got, err := svc.Generate(context.Background(), "convert this text")
	require.NoError(t, err)

	assert.Equal(t, `{"summary":"Lunch"}`, got)
	assert.Equal(t, "llama3.2:latest", received.Model)
	assert.Equal(t, "convert this text", received.Prompt)
	assert.False(t, received.Stream)
}

func TestOllamaGenerateBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	svc, err := NewService(&Config{
		Provider: "ollama",
		Endpoint: srv.URL,
		Model:    "missing",
	})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "anything")
	require.Error(t, err)

	appErr := apperr.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeModelUnavailable, appErr.Code)
}

func TestOllamaGenerateTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	svc, err := NewService(&Config{
		Provider: "ollama",
		Endpoint: srv.URL,
		Model:    "llama3.2:latest",
	})
	require.NoError(t, err)

	_, err = svc.Generate(context.Background(), "anything")
	require.Error(t, err)

	appErr := apperr.FromError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeModelUnavailable, appErr.Code)
}

func TestNewServiceValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "unknown provider", cfg: Config{Provider: "bard"}},
		{name: "ollama without endpoint", cfg: Config{Provider: "ollama", Model: "m"}},
		{name: "ollama without model", cfg: Config{Provider: "ollama", Endpoint: "http://x"}},
		{name: "openai without key", cfg: Config{Provider: "openai", Model: "gpt-4o-mini"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewService(&tt.cfg)
			assert.Error(t, err)
		})
	}
}
