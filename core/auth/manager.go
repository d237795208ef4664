package auth

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/redirect"
	"github.com/dmitrymomot/authkit/core/storage"
	"github.com/dmitrymomot/authkit/core/token"
	"github.com/dmitrymomot/authkit/pkg/errbus"
)

// strategyKey is the universal storage key holding the active strategy name.
const strategyKey = "auth.strategy"

// Manager is the session controller: it owns the session state, dispatches
// lifecycle calls to the active strategy, and routes failures to the error
// bus.
//
// Lifecycle failures (mounted, fetchUser, logout, reset) are broadcast and
// swallowed so the application keeps running in a degraded, logged-out
// state. Login failures are broadcast and returned to the caller.
type Manager struct {
	registry *Registry
	storage  storage.Storage
	tokens   *token.Store
	bus      *errbus.Bus
	redirect *redirect.Engine
	cfg      Config
	log      *slog.Logger
	unwatch  storage.UnwatchFunc
}

// Option configures a Manager.
type Option func(*Manager)

// WithStorage sets the storage collaborator. Required.
func WithStorage(st storage.Storage) Option {
	return func(m *Manager) {
		m.storage = st
	}
}

// WithTokenStore overrides the token store. Defaults to a store with the
// default key prefix over the manager's storage.
func WithTokenStore(tokens *token.Store) Option {
	return func(m *Manager) {
		m.tokens = tokens
	}
}

// WithBus overrides the error bus. Defaults to a fresh bus.
func WithBus(bus *errbus.Bus) Option {
	return func(m *Manager) {
		m.bus = bus
	}
}

// WithRegistry overrides the strategy registry. Defaults to an empty one.
func WithRegistry(reg *Registry) Option {
	return func(m *Manager) {
		m.registry = reg
	}
}

// WithRedirects attaches a redirect engine driven by loggedIn transitions.
func WithRedirects(engine *redirect.Engine) Option {
	return func(m *Manager) {
		m.redirect = engine
	}
}

// WithConfig replaces the manager configuration.
func WithConfig(cfg Config) Option {
	return func(m *Manager) {
		m.cfg = cfg
	}
}

// WithLogger sets the logger for swallowed lifecycle failures.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// New creates a session manager. Storage is the only required collaborator.
func New(opts ...Option) (*Manager, error) {
	m := &Manager{
		registry: NewRegistry(),
		bus:      errbus.New(),
		cfg:      defaultConfig(),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.storage == nil {
		return nil, ErrNoStorage
	}
	if m.tokens == nil {
		m.tokens = token.NewStore(m.storage)
	}
	return m, nil
}

// Register adds a strategy to the manager's registry.
func (m *Manager) Register(name string, s Strategy) {
	m.registry.Register(name, s)
}

// Bus returns the error bus, for registering listeners.
func (m *Manager) Bus() *errbus.Bus {
	return m.bus
}

// Tokens returns the token store shared with strategies.
func (m *Manager) Tokens() *token.Store {
	return m.tokens
}

// Init restores the persisted strategy name (falling back to the configured
// default, and to the default again when the persisted name is not
// registered), installs the client-side loggedIn watch, and mounts the
// resolved strategy exactly once.
func (m *Manager) Init(ctx context.Context) error {
	name, err := m.storage.SyncUniversal(ctx, strategyKey, m.cfg.DefaultStrategy)
	if err != nil {
		return err
	}
	if _, ok := m.registry.Get(name); !ok && name != m.cfg.DefaultStrategy {
		name = m.cfg.DefaultStrategy
		if err := m.storage.SetUniversal(ctx, strategyKey, name); err != nil {
			return err
		}
	}
	m.storage.SetState(stateStrategy, name)

	if m.cfg.ClientSide && m.cfg.WatchLoggedIn && m.redirect != nil {
		m.unwatch = m.storage.WatchState(stateLoggedIn, m.loggedInWatcher())
	}

	return m.Mounted(ctx)
}

// Close removes the loggedIn watch subscription installed by Init.
func (m *Manager) Close() {
	if m.unwatch != nil {
		m.unwatch()
		m.unwatch = nil
	}
}

// loggedInWatcher reacts to loggedIn transitions: true navigates home, false
// navigates to the logout destination. Routes opting out with option
// auth == false are left alone. Only value changes count as transitions.
func (m *Manager) loggedInWatcher() storage.WatchFunc {
	prev := m.LoggedIn()
	return func(value any) {
		loggedIn, _ := value.(bool)
		if loggedIn == prev {
			return
		}
		prev = loggedIn

		if v, ok := m.redirect.RouteOption("auth"); ok && v == false {
			return
		}

		event := redirect.EventHome
		if !loggedIn {
			event = redirect.EventLogout
		}
		m.redirect.Redirect(context.Background(), event, false)
	}
}

// SetStrategy persists name as the active strategy and mounts it. Switching
// to the already-active strategy is an idempotent no-op that never
// re-triggers the mount.
func (m *Manager) SetStrategy(ctx context.Context, name string) error {
	current, err := m.storage.GetUniversal(ctx, strategyKey)
	if err != nil {
		return err
	}
	if current == name {
		return nil
	}
	if err := m.storage.SetUniversal(ctx, strategyKey, name); err != nil {
		return err
	}
	m.storage.SetState(stateStrategy, name)
	return m.Mounted(ctx)
}

// Mounted runs the active strategy's mount hook. Strategies without one get
// the default mount behavior: fetch the user only when none is present.
// Mount failures are broadcast tagged method:"mounted" and swallowed, so a
// broken restore degrades to a logged-out session instead of failing Init.
func (m *Manager) Mounted(ctx context.Context) error {
	s, _ := m.registry.Get(m.Strategy())
	mountable, ok := s.(Mountable)
	if !ok {
		return m.FetchUserOnce(ctx)
	}
	if err := mountable.Mounted(ctx); err != nil {
		m.bus.CallOnError(err, errbus.Context{Method: "mounted"})
		m.log.Error("strategy mount failed",
			logger.Component("auth"),
			logger.Strategy(m.Strategy()),
			logger.Error(err),
		)
	}
	return nil
}

// LoginWith switches to the named strategy and then logs in with it. Login
// only proceeds after the strategy switch (including its mount) completes.
func (m *Manager) LoginWith(ctx context.Context, name string, creds Credentials) error {
	if err := m.SetStrategy(ctx, name); err != nil {
		return err
	}
	return m.Login(ctx, creds)
}

// Login delegates to the active strategy's login hook, wrapped with busy
// tracking: busy is raised and the last error cleared before the call, busy
// drops on settle, and a failure is broadcast tagged method:"login" before
// being returned. Strategies without login are a resolved no-op.
func (m *Manager) Login(ctx context.Context, creds Credentials) error {
	s, _ := m.registry.Get(m.Strategy())
	login, ok := s.(LoginStrategy)
	if !ok {
		return nil
	}

	m.bus.ClearError()
	m.setBusy(true)
	err := login.Login(ctx, creds)
	m.setBusy(false)

	if err != nil {
		m.bus.CallOnError(err, errbus.Context{Method: "login"})
		return err
	}
	return nil
}

// FetchUser delegates to the active strategy's user fetch. Failures are
// broadcast tagged method:"fetchUser" and swallowed.
func (m *Manager) FetchUser(ctx context.Context) error {
	s, _ := m.registry.Get(m.Strategy())
	fetcher, ok := s.(UserFetcher)
	if !ok {
		return nil
	}
	if err := fetcher.FetchUser(ctx); err != nil {
		m.bus.CallOnError(err, errbus.Context{Method: "fetchUser"})
		m.log.Error("user fetch failed",
			logger.Component("auth"),
			logger.Strategy(m.Strategy()),
			logger.Error(err),
		)
	}
	return nil
}

// FetchUserOnce fetches the user only when none is present.
func (m *Manager) FetchUserOnce(ctx context.Context) error {
	if m.User() == nil {
		return m.FetchUser(ctx)
	}
	return nil
}

// Logout delegates to the active strategy's logout hook, falling back to a
// local Reset for strategies without one. Failures are broadcast tagged
// method:"logout" and swallowed.
func (m *Manager) Logout(ctx context.Context) error {
	s, _ := m.registry.Get(m.Strategy())
	lo, ok := s.(LogoutStrategy)
	if !ok {
		return m.Reset(ctx)
	}
	if err := lo.Logout(ctx); err != nil {
		m.bus.CallOnError(err, errbus.Context{Method: "logout"})
		m.log.Error("strategy logout failed",
			logger.Component("auth"),
			logger.Strategy(m.Strategy()),
			logger.Error(err),
		)
	}
	return nil
}

// Reset delegates to the active strategy's reset hook when present;
// otherwise it clears the user and the token stored for the active
// strategy. Failures are broadcast tagged method:"reset" and swallowed.
func (m *Manager) Reset(ctx context.Context) error {
	s, _ := m.registry.Get(m.Strategy())
	resettable, ok := s.(Resettable)
	if !ok {
		m.SetUser(nil)
		if err := m.tokens.Clear(ctx, m.Strategy()); err != nil {
			m.bus.CallOnError(err, errbus.Context{Method: "reset"})
			m.log.Error("token clear failed",
				logger.Component("auth"),
				logger.Strategy(m.Strategy()),
				logger.Error(err),
			)
		}
		return nil
	}
	if err := resettable.Reset(ctx); err != nil {
		m.bus.CallOnError(err, errbus.Context{Method: "reset"})
		m.log.Error("strategy reset failed",
			logger.Component("auth"),
			logger.Strategy(m.Strategy()),
			logger.Error(err),
		)
	}
	return nil
}
