package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrygo/eventsense/internal/apperr"
)

// authorize redirects the browser to the Google consent screen.
func (s *APIService) authorize(c echo.Context) error {
	if !s.Profile.IsGoogleConfigured() {
		return writeError(c, apperr.Collaborator(http.StatusServiceUnavailable,
			"google OAuth client is not configured", nil))
	}
	return c.Redirect(http.StatusFound, s.Auth.AuthURL())
}

// authCallback exchanges the authorization code and persists the token.
func (s *APIService) authCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return writeError(c, apperr.InvalidArgument("missing authorization code"))
	}

	if err := s.Auth.Exchange(c.Request().Context(), code, c.QueryParam("state")); err != nil {
		return writeError(c, err)
	}

	return c.Redirect(http.StatusFound, "/")
}
