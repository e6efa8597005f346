// Package api registers the HTTP routes of the eventsense server.
package api

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/eventsense/internal/apperr"
	"github.com/hrygo/eventsense/internal/profile"
	"github.com/hrygo/eventsense/plugin/extract"
	"github.com/hrygo/eventsense/plugin/gcal"
	"github.com/hrygo/eventsense/server/middleware"
)

// APIService wires the extraction pipeline and the calendar collaborator to
// the HTTP surface.
type APIService struct {
	Profile   *profile.Profile
	Extractor *extract.Extractor
	Inserter  gcal.EventInserter
	Auth      *gcal.Authenticator
}

// NewAPIService creates an APIService.
func NewAPIService(p *profile.Profile, extractor *extract.Extractor, inserter gcal.EventInserter, auth *gcal.Authenticator) *APIService {
	return &APIService{
		Profile:   p,
		Extractor: extractor,
		Inserter:  inserter,
		Auth:      auth,
	}
}

// RegisterRoutes attaches all routes to the echo instance.
func (s *APIService) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", s.health)
	e.GET("/auth/google", s.authorize)
	e.GET("/auth/google/callback", s.authCallback)

	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.NewRateLimiter(10, 20).Middleware())
	apiGroup.POST("/text-to-event", s.textToEvent)
	apiGroup.POST("/create-event", s.createEvent)
}

func (s *APIService) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a pipeline error to its HTTP status. Causes are logged but
// never surfaced to the caller.
func writeError(c echo.Context, err error) error {
	if appErr := apperr.FromError(err); appErr != nil {
		slog.Warn("request failed",
			"path", c.Path(),
			"code", string(appErr.Code),
			"error", err.Error())
		return c.JSON(appErr.HTTPStatus(), errorResponse{Error: appErr.Message})
	}

	slog.Error("request failed with unexpected error", "path", c.Path(), "error", err.Error())
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
