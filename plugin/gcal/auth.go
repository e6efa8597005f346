package gcal

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"

	"github.com/hrygo/eventsense/internal/apperr"
)

// Authenticator owns the single OAuth client credential: it issues
// authorization URLs, exchanges callback codes and hands out authenticated
// HTTP clients. The token is the only state shared across requests; it is
// read-mostly and guarded by a RWMutex (written by the authorization
// callback, read by event submissions).
type Authenticator struct {
	config *oauth2.Config
	store  TokenStore

	mu    sync.RWMutex
	token *oauth2.Token
	state string
}

// NewAuthenticator creates an Authenticator and loads any previously saved
// token from the store. A missing token is not an error; event submissions
// fail with UNAUTHENTICATED until the OAuth flow completes.
func NewAuthenticator(clientID, clientSecret, redirectURL string, store TokenStore) *Authenticator {
	a := &Authenticator{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  redirectURL,
			Scopes:       []string{calendar.CalendarScope},
		},
		store: store,
	}

	if tok, err := store.Load(); err == nil {
		a.token = tok
	} else {
		slog.Info("no saved OAuth token, authorization required", "error", err)
	}

	return a
}

// AuthURL returns the authorization URL for the consent screen, with offline
// access so a refresh token is issued.
func (a *Authenticator) AuthURL() string {
	a.mu.Lock()
	a.state = shortuuid.New()
	state := a.state
	a.mu.Unlock()

	return a.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange validates the callback state, exchanges the authorization code
// for a token and persists it.
func (a *Authenticator) Exchange(ctx context.Context, code, state string) error {
	a.mu.RLock()
	expected := a.state
	a.mu.RUnlock()

	if expected == "" || state != expected {
		return apperr.InvalidArgument("invalid OAuth state")
	}

	tok, err := a.config.Exchange(ctx, code)
	if err != nil {
		return apperr.Collaborator(0, "exchanging authorization code", err)
	}

	a.setToken(tok)
	return nil
}

// HasToken reports whether a token is available.
func (a *Authenticator) HasToken() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.token != nil
}

// Client returns an HTTP client that authenticates requests and persists
// refreshed tokens. Fails with UNAUTHENTICATED when no token exists yet.
func (a *Authenticator) Client(ctx context.Context) (*http.Client, error) {
	a.mu.RLock()
	tok := a.token
	a.mu.RUnlock()

	if tok == nil {
		return nil, apperr.Unauthenticated("no OAuth token available, visit /auth/google to authorize")
	}

	src := oauth2.ReuseTokenSource(tok, a.config.TokenSource(ctx, tok))
	return oauth2.NewClient(ctx, &persistingTokenSource{auth: a, src: src}), nil
}

func (a *Authenticator) setToken(tok *oauth2.Token) {
	a.mu.Lock()
	changed := a.token == nil || a.token.AccessToken != tok.AccessToken
	a.token = tok
	a.mu.Unlock()

	if changed {
		if err := a.store.Save(tok); err != nil {
			slog.Warn("failed to persist OAuth token", "error", err)
		}
	}
}

// persistingTokenSource saves tokens refreshed by the oauth2 transport so a
// restart does not lose them.
type persistingTokenSource struct {
	auth *Authenticator
	src  oauth2.TokenSource
}

func (s *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	s.auth.setToken(tok)
	return tok, nil
}
