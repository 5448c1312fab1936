package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Persisted key names. SnapshotKey holds the serialized session snapshot;
// the token keys are stored separately so the HTTP client token can be
// rehydrated even if the snapshot is unreadable.
const (
	TokenKey        = "token"
	RefreshTokenKey = "refreshToken"
	SnapshotKey     = "auth-storage"
)

// Store is the persistence port of the session manager. Get returns
// ("", nil) for an absent key; Delete of an absent key is a no-op.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// FileStore persists each key as a file under a directory, one file per key.
type FileStore struct {
	dir string
}

// NewFileStore creates the directory if needed. An empty dir resolves to
// <user config dir>/asso-gestion.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve config dir: %w", err)
		}
		dir = filepath.Join(base, "asso-gestion")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	// Keys are fixed constants, but keep path traversal out regardless.
	return filepath.Join(s.dir, filepath.Base(key))
}

func (s *FileStore) Get(key string) (string, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session key %q: %w", key, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileStore) Set(key, value string) error {
	if err := os.WriteFile(s.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write session key %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) Delete(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete session key %q: %w", key, err)
	}
	return nil
}

// MemStore is an in-memory Store for tests and ephemeral sessions.
type MemStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{data: map[string]string{}}
}

func (s *MemStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key], nil
}

func (s *MemStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
