package auth

// Config holds session manager configuration.
type Config struct {
	// DefaultStrategy is used when no strategy name has been persisted yet,
	// or when the persisted name is not registered.
	DefaultStrategy string `env:"AUTH_DEFAULT_STRATEGY" envDefault:"local"`
	// ScopeKey is the gjson path of the scope claim on the user record.
	ScopeKey string `env:"AUTH_SCOPE_KEY" envDefault:"scope"`
	// WatchLoggedIn enables redirect-on-transition handling during Init.
	WatchLoggedIn bool `env:"AUTH_WATCH_LOGGED_IN" envDefault:"true"`
	// ClientSide marks a browser execution context. The loggedIn watch
	// subscription is only installed client-side.
	ClientSide bool `env:"AUTH_CLIENT_SIDE" envDefault:"false"`
}

func defaultConfig() Config {
	return Config{
		DefaultStrategy: "local",
		ScopeKey:        "scope",
		WatchLoggedIn:   true,
	}
}
