// Package gcal integrates with the Google Calendar collaborator: the OAuth
// credential lifecycle and the event insert call. Everything here is a thin
// pass-through to the Google SDK; the extraction pipeline never imports it.
package gcal

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

// TokenStore persists the OAuth token across restarts.
type TokenStore interface {
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
}

// FileTokenStore stores the token as a JSON file (the tokens.json of the
// original deployment).
type FileTokenStore struct {
	path string
}

// NewFileTokenStore creates a FileTokenStore at the given path.
func NewFileTokenStore(path string) *FileTokenStore {
	return &FileTokenStore{path: path}
}

// Load reads and unmarshals the token file.
func (f *FileTokenStore) Load() (*oauth2.Token, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading token file %s", f.path)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, errors.Wrap(err, "unmarshaling token")
	}
	return &tok, nil
}

// Save marshals and writes the token file with owner-only permissions.
func (f *FileTokenStore) Save(token *oauth2.Token) error {
	b, err := json.Marshal(token)
	if err != nil {
		return errors.Wrap(err, "marshaling token")
	}
	if err := os.WriteFile(f.path, b, 0o600); err != nil {
		return errors.Wrapf(err, "writing token file %s", f.path)
	}
	return nil
}
