package service_test

import (
	"path/filepath"
	"testing"

	"github.com/sweataroy942-eng/NutriLens-Tracker/internal/store"
)

// memStore is an in-memory stand-in for the persistence collaborator.
type memStore struct {
	m map[string]string
}

func newMemStore() *memStore {
	return &memStore{m: map[string]string{}}
}

func (s *memStore) Get(key string) (string, bool, error) {
	value, ok := s.m[key]
	return value, ok, nil
}

func (s *memStore) Put(key, value string) error {
	s.m[key] = value
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutrilens.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}
