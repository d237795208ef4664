package redirect

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/storage"
)

// Event names a navigation transition with a configured destination.
type Event string

const (
	EventLogin    Event = "login"
	EventLogout   Event = "logout"
	EventHome     Event = "home"
	EventCallback Event = "callback"
)

// RedirectMap maps events to destination paths. Absent entries are no-ops.
type RedirectMap map[Event]string

// returnToKey is the universal storage key holding the deep-link restore
// target persisted between a login redirect and the following home redirect.
const returnToKey = "auth.redirect"

// Config controls the redirect policy.
type Config struct {
	// Enabled turns the whole engine on. A disabled engine never navigates.
	Enabled bool `env:"AUTH_REDIRECT_ENABLED" envDefault:"true"`
	// RewriteRedirects enables deep-link restore: the path a login redirect
	// interrupted is persisted and used once as the next home destination.
	RewriteRedirects bool `env:"AUTH_REWRITE_REDIRECTS" envDefault:"true"`
	// FullPathRedirect preserves query strings in persisted return targets.
	FullPathRedirect bool `env:"AUTH_FULL_PATH_REDIRECT" envDefault:"false"`
	// ClientSide marks a browser execution context, where a full-page
	// replace is available as a navigation mechanism.
	ClientSide bool `env:"AUTH_CLIENT_SIDE" envDefault:"false"`
}

func defaultConfig() Config {
	return Config{
		Enabled:          true,
		RewriteRedirects: true,
	}
}

// Engine computes and executes navigation for login/logout transitions with
// redirect-loop prevention and optional deep-link restore.
type Engine struct {
	router  Router
	storage storage.Storage
	routes  RedirectMap
	cfg     Config
	log     *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithConfig replaces the engine configuration.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLogger sets the logger used for storage failures during redirects.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine creates a redirect engine for the given router, storage, and
// event destinations.
func NewEngine(router Router, st storage.Storage, routes RedirectMap, opts ...Option) *Engine {
	e := &Engine{
		router:  router,
		storage: st,
		routes:  routes,
		cfg:     defaultConfig(),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RouteOption returns the named option of the current route.
func (e *Engine) RouteOption(name string) (any, bool) {
	opts := e.router.RouteOptions()
	if opts == nil {
		return nil, false
	}
	v, ok := opts[name]
	return v, ok
}

// Redirect navigates to the destination configured for event.
//
// No-op when the engine is disabled or no destination is configured. With
// rewrite enabled, a login redirect persists the interrupted same-origin
// relative path as a one-shot return target, and a home redirect consumes
// it. Navigation is aborted whenever the resolved destination, including a
// rewritten one, normalizes to the current path. When suppressRouter is set
// in a client-side context, navigation bypasses the router with a full-page
// replace.
func (e *Engine) Redirect(ctx context.Context, event Event, suppressRouter bool) {
	if !e.cfg.Enabled {
		return
	}
	to, ok := e.routes[event]
	if !ok || to == "" {
		return
	}

	from := e.router.Path()
	if e.cfg.FullPathRedirect {
		from = e.router.FullPath()
	}

	if e.cfg.RewriteRedirects {
		switch event {
		case EventLogin:
			if isRelativeURL(from) && normalizePath(from) != normalizePath(to) {
				if err := e.storage.SetUniversal(ctx, returnToKey, from); err != nil {
					e.log.Error("failed to persist return target",
						logger.Component("redirect"),
						logger.Event(string(event)),
						logger.Error(err),
					)
				}
			}
		case EventHome:
			saved, err := e.storage.GetUniversal(ctx, returnToKey)
			if err != nil {
				e.log.Error("failed to read return target",
					logger.Component("redirect"),
					logger.Event(string(event)),
					logger.Error(err),
				)
			}
			if saved != "" {
				// One-shot: the target is cleared even when unusable.
				if err := e.storage.RemoveUniversal(ctx, returnToKey); err != nil {
					e.log.Error("failed to clear return target",
						logger.Component("redirect"),
						logger.Event(string(event)),
						logger.Error(err),
					)
				}
			}
			if isRelativeURL(saved) {
				to = saved
			}
		}
	}

	// Loop prevention covers the rewritten destination as well.
	if normalizePath(to) == normalizePath(from) {
		return
	}

	if e.cfg.ClientSide && suppressRouter {
		e.router.Replace(to)
		return
	}
	e.router.Redirect(to)
}

// isRelativeURL reports whether u is a same-origin relative path. Scheme
// prefixes and protocol-relative URLs ("//evil.example") are rejected so a
// persisted return target can never navigate off-origin.
func isRelativeURL(u string) bool {
	if u == "" || u[0] != '/' {
		return false
	}
	if strings.HasPrefix(u, "//") {
		return false
	}
	return !strings.Contains(u, "://")
}

// normalizePath reduces a destination to its bare path: query string and
// fragment are dropped and a trailing slash is trimmed, so "/home/?a=1" and
// "/home" compare equal for loop prevention.
func normalizePath(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		p = "/"
	}
	return p
}
