package storage

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-process Storage implementation.
//
// It is the canonical backend for tests and for embedders that run on a
// single surface and do not need cross-surface persistence. Universal values
// survive only for the lifetime of the process.
type Memory struct {
	mu        sync.RWMutex
	state     map[string]any
	universal map[string]string
	watchers  map[string]map[string]WatchFunc
}

// NewMemory creates an empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{
		state:     make(map[string]any),
		universal: make(map[string]string),
		watchers:  make(map[string]map[string]WatchFunc),
	}
}

// GetState returns the ephemeral state value for key, or nil.
func (m *Memory) GetState(key string) any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state[key]
}

// SetState stores an ephemeral state value and synchronously notifies every
// watcher registered for key.
func (m *Memory) SetState(key string, value any) {
	m.mu.Lock()
	m.state[key] = value
	fns := make([]WatchFunc, 0, len(m.watchers[key]))
	for _, fn := range m.watchers[key] {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	// Watchers run outside the lock so they can read state back.
	for _, fn := range fns {
		fn(value)
	}
}

// WatchState registers a watcher for mutations of key and returns a function
// that removes it.
func (m *Memory) WatchState(key string, fn WatchFunc) UnwatchFunc {
	id := uuid.NewString()

	m.mu.Lock()
	if m.watchers[key] == nil {
		m.watchers[key] = make(map[string]WatchFunc)
	}
	m.watchers[key][id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.watchers[key], id)
		m.mu.Unlock()
	}
}

// GetUniversal returns the persisted value for key, or "" when absent.
func (m *Memory) GetUniversal(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.universal[key], nil
}

// SetUniversal stores a persisted value.
func (m *Memory) SetUniversal(_ context.Context, key, value string) error {
	m.mu.Lock()
	m.universal[key] = value
	m.mu.Unlock()
	return nil
}

// RemoveUniversal deletes a persisted value. Removing an absent key is a no-op.
func (m *Memory) RemoveUniversal(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.universal, key)
	m.mu.Unlock()
	return nil
}

// SyncUniversal resolves the persisted value for key against fallback and
// writes the result back.
func (m *Memory) SyncUniversal(_ context.Context, key, fallback string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	value := m.universal[key]
	if value == "" {
		value = fallback
	}
	if value != "" {
		m.universal[key] = value
	}
	return value, nil
}
