// Package server assembles the echo HTTP server for eventsense.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/hrygo/eventsense/internal/profile"
	"github.com/hrygo/eventsense/plugin/extract"
	"github.com/hrygo/eventsense/plugin/gcal"
	"github.com/hrygo/eventsense/plugin/llm"
	"github.com/hrygo/eventsense/server/router/api"
)

// Server is the eventsense HTTP server.
type Server struct {
	Profile *profile.Profile

	echoServer *echo.Echo
}

// NewServer wires the extraction pipeline, the calendar collaborator and the
// HTTP routes together.
func NewServer(p *profile.Profile) (*Server, error) {
	llmService, err := llm.NewService(&llm.Config{
		Provider: p.LLMProvider,
		Model:    p.LLMModel,
		Endpoint: p.OllamaEndpoint,
		APIKey:   p.OpenAIAPIKey,
		BaseURL:  p.OpenAIBaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating LLM service")
	}

	auth := gcal.NewAuthenticator(
		p.GoogleClientID,
		p.GoogleClientSecret,
		p.GoogleRedirectURI,
		gcal.NewFileTokenStore(p.TokenPath),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())

	api.NewAPIService(p, extract.NewExtractor(llmService), gcal.NewService(auth), auth).RegisterRoutes(e)

	return &Server{
		Profile:    p,
		echoServer: e,
	}, nil
}

// Start begins serving and blocks until the server is shut down.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.Profile.Addr, s.Profile.Port)
	slog.Info("server started",
		"address", addr,
		"mode", s.Profile.Mode,
		"version", s.Profile.Version)

	if err := s.echoServer.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "starting server")
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echoServer.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomw.RequestLoggerValues) error {
			slog.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID)
			return nil
		},
	})
}
