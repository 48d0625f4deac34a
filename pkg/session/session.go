// Package session persists the single "current user" record across restarts,
// the way the storefront kept one localStorage key. Exactly one value exists
// at a time: Set overwrites it, Clear removes it.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

type Store interface {
	// Get unmarshals the stored value into v. ok is false when no value is
	// stored; malformed content also reads as absent, never as an error.
	Get(v any) (ok bool, err error)
	Set(v any) error
	Clear() error
}

// FileStore keeps the session as one JSON file on disk.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get(v any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	// Corrupt session file means signed out, not a failure.
	if json.Unmarshal(raw, v) != nil {
		return false, nil
	}
	return true, nil
}

func (s *FileStore) Set(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
