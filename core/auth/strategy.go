package auth

import (
	"context"
	"sync"
)

// Credentials carries the login payload handed to a strategy, e.g. username
// and password fields or a one-time code.
type Credentials map[string]any

// Strategy is an authentication scheme registered under a unique name.
//
// The five lifecycle hooks are all optional: a strategy implements any
// subset of the capability interfaces below, and the manager treats missing
// capabilities as no-ops (or applies the documented fallback). A Strategy
// value implementing none of them is a valid, fully inert scheme.
type Strategy interface{}

// Mountable is implemented by strategies that need to run restore logic
// when they become active, e.g. syncing a persisted token and fetching the
// user. Strategies without it get the default mount behavior: fetch the
// user only if none is present.
type Mountable interface {
	Mounted(ctx context.Context) error
}

// LoginStrategy is implemented by strategies that support credential login.
type LoginStrategy interface {
	Login(ctx context.Context, creds Credentials) error
}

// UserFetcher is implemented by strategies that can (re)load the user record.
type UserFetcher interface {
	FetchUser(ctx context.Context) error
}

// LogoutStrategy is implemented by strategies with backend logout calls.
// Strategies without it are logged out by a plain local reset.
type LogoutStrategy interface {
	Logout(ctx context.Context) error
}

// Resettable is implemented by strategies with custom local-reset logic.
// The default reset clears the user and the strategy's stored token.
type Resettable interface {
	Reset(ctx context.Context) error
}

// Registry maps strategy names to strategy values. Registration happens at
// startup; entries are never removed.
type Registry struct {
	mu         sync.RWMutex
	strategies map[string]Strategy
}

// NewRegistry creates an empty strategy registry.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[string]Strategy),
	}
}

// Register stores s under name, silently overwriting a previous entry. No
// capability validation happens here; capabilities are checked at call time.
func (r *Registry) Register(name string, s Strategy) {
	r.mu.Lock()
	r.strategies[name] = s
	r.mu.Unlock()
}

// Get returns the strategy registered under name.
func (r *Registry) Get(name string) (Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.strategies[name]
	return s, ok
}
