package config

import (
	"sync"
)

// PropertyStore is the read surface over a loaded property set. The variant
// is picked once at load time and never changes: a FrozenStore is a plain
// snapshot, a MutableStore additionally accepts runtime overwrites.
type PropertyStore interface {
	// Get returns the raw string value for name, or false if absent.
	Get(name string) (string, bool)
	// Mutable reports whether this store accepts Set calls.
	Mutable() bool
	// Snapshot returns a copy of the current mapping, for diagnostics.
	Snapshot() map[string]string
}

// FrozenStore is an immutable property snapshot. Reads need no locking.
type FrozenStore struct {
	values map[string]string
}

// NewFrozenStore copies values into a read-only store.
func NewFrozenStore(values map[string]string) *FrozenStore {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &FrozenStore{values: m}
}

func (s *FrozenStore) Get(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

func (s *FrozenStore) Mutable() bool {
	return false
}

func (s *FrozenStore) Snapshot() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// MutableStore guards its map with a read-write lock so worker threads can
// read concurrently while overwrites serialize.
type MutableStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMutableStore seeds a mutable store from values.
func NewMutableStore(values map[string]string) *MutableStore {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &MutableStore{values: m}
}

func (s *MutableStore) Get(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[name]
	return v, ok
}

func (s *MutableStore) Mutable() bool {
	return true
}

func (s *MutableStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Set overwrites name with value and returns the previous value if one
// existed.
func (s *MutableStore) Set(name, value string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[name]
	s.values[name] = value
	return prev, had
}
