package kv

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore persists all keys into one JSON file, the closest server-side
// equivalent of browser local storage. Every Set rewrites the file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) load() map[string]json.RawMessage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]json.RawMessage{}
	}
	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt file counts as no prior data.
		return map[string]json.RawMessage{}
	}
	return entries
}

func (s *FileStore) flush(entries map[string]json.RawMessage) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write never corrupts existing state.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, found := s.load()[key]
	if !found {
		return nil, false, nil
	}
	return value, true, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	entries[key] = json.RawMessage(value)
	return s.flush(entries)
}

func (s *FileStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	delete(entries, key)
	return s.flush(entries)
}
