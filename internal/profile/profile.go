package profile

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Profile is the configuration to start the main server.
type Profile struct {
	// Mode can be "prod" or "dev"
	Mode string
	// Addr is the binding address for the server
	Addr string
	// Port is the binding port for the server
	Port int
	// Version is the current version of the server
	Version string

	// LLM configuration
	LLMProvider    string // EVENTSENSE_LLM_PROVIDER: "ollama" (default) or "openai"
	LLMModel       string // EVENTSENSE_LLM_MODEL (legacy: OLLAMA_MODEL)
	OllamaEndpoint string // EVENTSENSE_OLLAMA_ENDPOINT (legacy: OLLAMA_ENDPOINT), full generate URL
	OpenAIAPIKey   string // EVENTSENSE_OPENAI_API_KEY
	OpenAIBaseURL  string // EVENTSENSE_OPENAI_BASE_URL (default: https://api.openai.com/v1)

	// Google Calendar configuration
	GoogleClientID     string // EVENTSENSE_GOOGLE_CLIENT_ID (legacy: GOOGLE_CLIENT_ID)
	GoogleClientSecret string // EVENTSENSE_GOOGLE_CLIENT_SECRET (legacy: GOOGLE_CLIENT_SECRET)
	GoogleRedirectURI  string // EVENTSENSE_GOOGLE_REDIRECT_URI (legacy: GOOGLE_REDIRECT_URI)
	TokenPath          string // EVENTSENSE_TOKEN_PATH (default: tokens.json)
	CalendarID         string // EVENTSENSE_CALENDAR_ID (default: primary)
}

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

// IsGoogleConfigured reports whether the OAuth client can be constructed.
func (p *Profile) IsGoogleConfigured() bool {
	return p.GoogleClientID != "" && p.GoogleClientSecret != ""
}

// getEnvWithFallback returns the EVENTSENSE_* value, falling back to the
// legacy unprefixed name used by earlier deployments.
func getEnvWithFallback(newKey, legacyKey string) string {
	if v := os.Getenv(newKey); v != "" {
		return v
	}
	if legacyKey == "" {
		return ""
	}
	return os.Getenv(legacyKey)
}

func getEnvWithDefault(newKey, legacyKey, defaultValue string) string {
	if v := getEnvWithFallback(newKey, legacyKey); v != "" {
		return v
	}
	return defaultValue
}

// FromEnv loads configuration from environment variables.
func (p *Profile) FromEnv() {
	p.LLMProvider = getEnvWithDefault("EVENTSENSE_LLM_PROVIDER", "", "ollama")
	p.LLMModel = getEnvWithFallback("EVENTSENSE_LLM_MODEL", "OLLAMA_MODEL")
	p.OllamaEndpoint = getEnvWithFallback("EVENTSENSE_OLLAMA_ENDPOINT", "OLLAMA_ENDPOINT")
	p.OpenAIAPIKey = getEnvWithFallback("EVENTSENSE_OPENAI_API_KEY", "OPENAI_API_KEY")
	p.OpenAIBaseURL = getEnvWithDefault("EVENTSENSE_OPENAI_BASE_URL", "OPENAI_BASE_URL", "https://api.openai.com/v1")

	p.GoogleClientID = getEnvWithFallback("EVENTSENSE_GOOGLE_CLIENT_ID", "GOOGLE_CLIENT_ID")
	p.GoogleClientSecret = getEnvWithFallback("EVENTSENSE_GOOGLE_CLIENT_SECRET", "GOOGLE_CLIENT_SECRET")
	p.GoogleRedirectURI = getEnvWithFallback("EVENTSENSE_GOOGLE_REDIRECT_URI", "GOOGLE_REDIRECT_URI")
	p.TokenPath = getEnvWithDefault("EVENTSENSE_TOKEN_PATH", "TOKEN_PATH", "tokens.json")
	p.CalendarID = getEnvWithDefault("EVENTSENSE_CALENDAR_ID", "", "primary")

	if port := getEnvWithFallback("EVENTSENSE_PORT", "PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			p.Port = n
		}
	}
}

// Validate checks the profile and fills derived defaults. The model endpoint
// and identifier are required to reach the model client, so their absence is
// a startup error rather than a silent default.
func (p *Profile) Validate() error {
	if p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "dev"
	}
	if p.Port == 0 {
		p.Port = 3000
	}
	if p.GoogleRedirectURI == "" {
		p.GoogleRedirectURI = fmt.Sprintf("http://localhost:%d/auth/google/callback", p.Port)
	}

	switch p.LLMProvider {
	case "ollama":
		if p.OllamaEndpoint == "" {
			return errors.New("model endpoint is required: set EVENTSENSE_OLLAMA_ENDPOINT")
		}
		if p.LLMModel == "" {
			return errors.New("model identifier is required: set EVENTSENSE_LLM_MODEL")
		}
	case "openai":
		if p.OpenAIAPIKey == "" {
			return errors.New("openai API key is required: set EVENTSENSE_OPENAI_API_KEY")
		}
		if p.LLMModel == "" {
			return errors.New("model identifier is required: set EVENTSENSE_LLM_MODEL")
		}
	default:
		return errors.Errorf("unsupported LLM provider: %s", p.LLMProvider)
	}

	return nil
}
