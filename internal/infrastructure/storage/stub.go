package storage

import (
	"context"
	"errors"
	"sync"

	collectionapp "github.com/koreat/backend/internal/application/collection"
)

// StubObjectStorage is an in-memory ObjectStorage for development and
// tests. Uploaded data is held in a map and never persisted.
type StubObjectStorage struct {
	// BaseURL is the base URL for generated object URLs
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure StubObjectStorage implements ObjectStorage
var _ collectionapp.ObjectStorage = (*StubObjectStorage)(nil)

// Upload stores data in memory and returns a deterministic URL
func (s *StubObjectStorage) Upload(_ context.Context, key string, data []byte, _ string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return s.BaseURL + "/" + key, nil
}

// Delete removes an in-memory object
func (s *StubObjectStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Has reports whether a key was uploaded (test helper)
func (s *StubObjectStorage) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok
}
