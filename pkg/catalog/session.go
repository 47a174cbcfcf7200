package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSession keeps the authentication flag in a small file.
// It is a convenience for the UI, not a credential store.
type FileSession struct {
	Path string
}

// NewFileSession stores the flag as "session" inside dir
func NewFileSession(dir string) *FileSession {
	return &FileSession{Path: filepath.Join(dir, "session")}
}

func (s *FileSession) Load() (bool, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return strings.TrimSpace(string(data)) == "authenticated", nil
}

func (s *FileSession) Save(authenticated bool) error {
	if !authenticated {
		if err := os.Remove(s.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	if err := os.WriteFile(s.Path, []byte("authenticated\n"), 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}
