package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeRedirects(t *testing.T) {
	env := newTestEnv(t, validModelResponse)

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)

	location := rec.Header().Get(http.CanonicalHeaderKey("Location"))
	assert.Contains(t, location, "accounts.google.com")
	assert.Contains(t, location, "client-id")
	assert.Contains(t, location, "state=")
}

func TestAuthCallbackMissingCode(t *testing.T) {
	env := newTestEnv(t, validModelResponse)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback", nil)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "authorization code")
}

func TestAuthCallbackBadState(t *testing.T) {
	env := newTestEnv(t, validModelResponse)

	req := httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc&state=wrong", nil)
	rec := httptest.NewRecorder()
	env.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
