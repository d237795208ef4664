package auth

// Ephemeral state keys. State lives in the storage collaborator so that
// WatchState subscriptions observe every mutation.
const (
	stateUser     = "user"
	stateLoggedIn = "loggedIn"
	stateStrategy = "strategy"
	stateBusy     = "busy"
)

// SetUser atomically updates the user record and the loggedIn flag. It is
// the only writer of either field, which is what keeps the invariant
// loggedIn == (user != nil) intact across all call sites. The user field is
// written first so loggedIn watchers read fully-updated state.
func (m *Manager) SetUser(user any) {
	m.storage.SetState(stateUser, user)
	m.storage.SetState(stateLoggedIn, user != nil)
}

// User returns the current user record, or nil when logged out.
func (m *Manager) User() any {
	return m.storage.GetState(stateUser)
}

// LoggedIn reports whether a user is present.
func (m *Manager) LoggedIn() bool {
	v, _ := m.storage.GetState(stateLoggedIn).(bool)
	return v
}

// Strategy returns the active strategy name.
func (m *Manager) Strategy() string {
	v, _ := m.storage.GetState(stateStrategy).(string)
	return v
}

// Busy reports whether a login attempt is in flight. Busy is advisory state
// for UI, not a concurrency lock: overlapping login attempts are not
// serialized and race at the storage layer with last-write-wins semantics.
func (m *Manager) Busy() bool {
	v, _ := m.storage.GetState(stateBusy).(bool)
	return v
}

func (m *Manager) setBusy(busy bool) {
	m.storage.SetState(stateBusy, busy)
}
