package logger

import "log/slog"

// Attribute helpers use the empty Attr pattern for nil safety, so call sites
// can write log.Error("msg", logger.Error(err)) without explicit nil checks.

// Error creates an attribute for a single error under the key "error".
// Returns an empty Attr for nil errors.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Strategy creates an attribute for the active authentication strategy name.
func Strategy(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("strategy", name)
}

// Method creates an attribute for session lifecycle or HTTP method names.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Event creates an attribute for redirect event names.
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Key creates a generic key-value attribute. Returns an empty Attr for nil
// values.
func Key(key string, value any) slog.Attr {
	if value == nil {
		return slog.Attr{}
	}
	return slog.Any(key, value)
}
