package token

import (
	"context"

	"github.com/dmitrymomot/authkit/core/storage"
)

// DefaultPrefix is the universal key prefix for stored tokens.
const DefaultPrefix = "auth._token."

// Store reads and writes per-strategy authorization tokens through the
// universal (persisted + synced) key-space of the storage collaborator.
// Keys are derived as prefix + strategy name; values are opaque strings,
// typically including the scheme ("Bearer eyJ...").
type Store struct {
	storage storage.Storage
	prefix  string
}

// Option configures a token store.
type Option func(*Store)

// WithPrefix overrides the universal key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewStore creates a token store over the given storage.
func NewStore(st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage: st,
		prefix:  DefaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(strategy string) string {
	return s.prefix + strategy
}

// Get returns the token stored for strategy, or "" when absent.
func (s *Store) Get(ctx context.Context, strategy string) (string, error) {
	return s.storage.GetUniversal(ctx, s.key(strategy))
}

// Set persists the token for strategy, overwriting any previous value.
func (s *Store) Set(ctx context.Context, strategy, value string) error {
	return s.storage.SetUniversal(ctx, s.key(strategy), value)
}

// Sync re-reads the persisted token for strategy, refreshing any
// cross-surface replica the storage maintains, and returns it.
func (s *Store) Sync(ctx context.Context, strategy string) (string, error) {
	return s.storage.SyncUniversal(ctx, s.key(strategy), "")
}

// Clear removes the token stored for strategy.
func (s *Store) Clear(ctx context.Context, strategy string) error {
	return s.storage.RemoveUniversal(ctx, s.key(strategy))
}
