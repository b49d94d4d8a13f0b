package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
)

// FileStore persists all items as one JSON object in a file. The file is
// re-read on every operation so separate CLI invocations observe each
// other's writes, and rewritten atomically through a temp file.
type FileStore struct {
	path   string
	mu     sync.Mutex
	closed bool
}

// NewFileStore returns a FileStore backed by path, creating its parent
// directory if needed. The file itself is created on first write.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("file store path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) GetItem(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return "", false, wrapErr("get", key, ErrClosed)
	}
	items, err := s.load()
	if err != nil {
		return "", false, wrapErr("get", key, err)
	}
	v, ok := items[key]
	return v, ok, nil
}

func (s *FileStore) SetItem(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return wrapErr("set", key, ErrClosed)
	}
	items, err := s.load()
	if err != nil {
		return wrapErr("set", key, err)
	}
	items[key] = value
	return wrapErr("set", key, s.save(items))
}

func (s *FileStore) RemoveItem(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return wrapErr("remove", key, ErrClosed)
	}
	items, err := s.load()
	if err != nil {
		return wrapErr("remove", key, err)
	}
	if _, ok := items[key]; !ok {
		return nil
	}
	delete(items, key)
	return wrapErr("remove", key, s.save(items))
}

func (s *FileStore) Keys(context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, wrapErr("keys", "", ErrClosed)
	}
	items, err := s.load()
	if err != nil {
		return nil, wrapErr("keys", "", err)
	}
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]string), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	items := make(map[string]string)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.path, err)
	}
	return items, nil
}

func (s *FileStore) save(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode items: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".storage-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}
	return nil
}
