package storage

import "context"

// WatchFunc receives the new value of a watched state key after each mutation.
type WatchFunc func(value any)

// UnwatchFunc removes a previously registered watcher.
type UnwatchFunc func()

// Storage is the persistence collaborator consumed by the authentication core.
//
// It exposes two distinct key-spaces:
//
//   - Ephemeral state: per-surface, in-memory session fields (user, loggedIn,
//     busy, strategy). State operations are synchronous and never fail.
//   - Universal values: persisted and synced across surfaces (strategy name,
//     tokens, redirect targets). Universal operations may touch the network
//     and therefore take a context and return an error.
//
// WatchState subscriptions fire synchronously on every mutation of the
// watched key, in the goroutine performing the write.
type Storage interface {
	GetState(key string) any
	SetState(key string, value any)
	WatchState(key string, fn WatchFunc) UnwatchFunc

	GetUniversal(ctx context.Context, key string) (string, error)
	SetUniversal(ctx context.Context, key, value string) error
	RemoveUniversal(ctx context.Context, key string) error
	// SyncUniversal reads the persisted value for key, substitutes fallback
	// when the persisted value is empty, writes the resolved value back, and
	// returns it. An empty resolved value is not written.
	SyncUniversal(ctx context.Context, key, fallback string) (string, error)
}
