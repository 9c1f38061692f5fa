package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the session record as one JSON file. Writes go through a
// temp file and rename so a crash mid-write never leaves a half-written
// record behind.
type FileStore struct {
	path string
}

// NewFileStore builds a [FileStore] at path. Parent directories are created
// on first save, not here.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("session file path required")
	}
	return &FileStore{path: path}, nil
}

// DefaultSessionPath returns the conventional per-user record location,
// $XDG_CONFIG_HOME-aware via [os.UserConfigDir].
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "echoaway", "session.json"), nil
}

// Load implements [Store].
func (s *FileStore) Load(_ context.Context) (*Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if rec.Token == "" {
		return nil, ErrCorrupt
	}
	return &rec, nil
}

// Save implements [Store].
func (s *FileStore) Save(_ context.Context, rec *Record) error {
	if rec == nil || rec.Token == "" {
		return errors.New("refusing to save empty session record")
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Delete implements [Store]. Removing an absent file is not an error.
func (s *FileStore) Delete(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
