package errbus

import "sync"

// Context identifies the operation that produced a broadcast error.
type Context struct {
	// Method names the originating session operation, e.g. "login" or "mounted".
	Method string
}

// Listener receives every error published on the bus.
type Listener func(err error, ctx Context)

// Bus fans authentication errors out to an ordered list of listeners and
// remembers the most recent error for UI consumption.
//
// Listeners are invoked synchronously in registration order. Panics inside a
// listener are intentionally not recovered; a broken listener is a programming
// error that should surface at the call site.
type Bus struct {
	mu        sync.RWMutex
	listeners []Listener
	lastErr   error
}

// New creates an empty error bus.
func New() *Bus {
	return &Bus{}
}

// OnError appends a listener. Listeners are never deduplicated; registering
// the same function twice means it is called twice per error.
func (b *Bus) OnError(l Listener) {
	if l == nil {
		return
	}
	b.mu.Lock()
	b.listeners = append(b.listeners, l)
	b.mu.Unlock()
}

// CallOnError records err as the last-seen error and delivers it to every
// registered listener in order.
func (b *Bus) CallOnError(err error, ctx Context) {
	b.mu.Lock()
	b.lastErr = err
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	for _, l := range listeners {
		l(err, ctx)
	}
}

// LastError returns the most recently broadcast error, or nil.
func (b *Bus) LastError() error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastErr
}

// ClearError resets the last-seen error. The session manager calls this at
// the start of every login attempt.
func (b *Bus) ClearError() {
	b.mu.Lock()
	b.lastErr = nil
	b.mu.Unlock()
}
