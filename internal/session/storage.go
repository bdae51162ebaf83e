package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// TokenStorage persists the bearer token between runs. A single key of
// plain text; absence means unauthenticated.
type TokenStorage interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// FileTokenStorage keeps the token in a file under the user config dir.
type FileTokenStorage struct {
	path string
}

// NewFileTokenStorage builds storage at path, or at the default location
// when path is empty.
func NewFileTokenStorage(path string) (*FileTokenStorage, error) {
	if path == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(configDir, "legal-qa-bot", "token")
	}
	return &FileTokenStorage{path: path}, nil
}

// Load returns the stored token, or "" when no usable token exists. A
// missing or unreadable file is treated as "no session", not an error.
func (s *FileTokenStorage) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", nil
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileTokenStorage) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token+"\n"), 0o600)
}

func (s *FileTokenStorage) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
