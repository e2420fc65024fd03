package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pr-poehali-dev/online-shop-network/internal/model"
)

const (
	tokenEntry = "auth_token"
	userEntry  = "user.json"
)

// Store persists the authenticated session across runs. A session is present
// only when both the token entry and the user entry exist and the user entry
// deserializes; anything less is reported as absent.
type Store interface {
	Save(token string, user model.User) error
	Load() (model.Session, bool)
	Clear() error
}

// FileStore keeps the two session entries as files under a single directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("session directory is required")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	return &FileStore{dir: dir}, nil
}

// Save writes both entries. The token is written last so a failure partway
// through never leaves a loadable half-session behind.
func (s *FileStore) Save(token string, user model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(s.dir, userEntry), data, 0o600); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.dir, tokenEntry), []byte(token), 0o600)
}

// Load returns the persisted session. Malformed or partial data degrades
// silently to absent; the caller is expected to require re-authentication.
func (s *FileStore) Load() (model.Session, bool) {
	tokenData, err := os.ReadFile(filepath.Join(s.dir, tokenEntry))
	if err != nil {
		return model.Session{}, false
	}

	token := strings.TrimSpace(string(tokenData))
	if token == "" {
		return model.Session{}, false
	}

	userData, err := os.ReadFile(filepath.Join(s.dir, userEntry))
	if err != nil {
		return model.Session{}, false
	}

	var user model.User
	if err := json.Unmarshal(userData, &user); err != nil {
		slog.Debug("discarding malformed session entry", "entry", userEntry, "error", err)
		return model.Session{}, false
	}

	return model.Session{Token: token, User: user}, true
}

// Clear removes both entries. Missing entries are not an error.
func (s *FileStore) Clear() error {
	for _, name := range []string{tokenEntry, userEntry} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}
