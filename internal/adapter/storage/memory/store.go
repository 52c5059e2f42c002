// Package memory provides an in-memory KeyValueStore.
// It backs tests and the default profile when no storage path is configured.
package memory

import (
	"sync"

	"github.com/hoangtrungvu/musicstream/internal/ports"
)

// Store is a map-backed key-value store.
//
// Thread-safe: all operations protected by sync.RWMutex.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Get returns the value for key; the boolean is false when absent.
func (s *Store) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok, nil
}

// Set stores value under key.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)
	return nil
}

// Keys returns all stored keys.
func (s *Store) Keys() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.values))
	for key := range s.values {
		keys = append(keys, key)
	}
	return keys, nil
}

// Close marks the store closed. Data is retained so late readers during
// shutdown see consistent state.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}

// Len returns the number of stored keys, for tests.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.values)
}

// Verify interface implementation
var _ ports.KeyValueStore = (*Store)(nil)
