// Package auth implements the client-side authentication session
// orchestrator: pluggable strategies, session state with a maintained
// loggedIn invariant, busy tracking around login attempts, and error
// propagation over a broadcast bus.
//
// # Core Components
//
//   - Manager: the session controller owning state and lifecycle dispatch
//   - Registry: name -> strategy lookup, populated once at startup
//   - Strategy capability interfaces: Mountable, LoginStrategy, UserFetcher,
//     LogoutStrategy, Resettable — all optional, checked at call time
//
// # Basic Usage
//
//	store := storage.NewMemory()
//	manager, err := auth.New(
//		auth.WithStorage(store),
//		auth.WithConfig(auth.Config{
//			DefaultStrategy: "local",
//			ScopeKey:        "scope",
//			WatchLoggedIn:   true,
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager.Register("local", localStrategy)
//
//	if err := manager.Init(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer manager.Close()
//
//	err = manager.LoginWith(ctx, "local", auth.Credentials{
//		"email":    "user@example.com",
//		"password": "secret",
//	})
//
// # State Invariants
//
// Session state (user, loggedIn, strategy, busy) lives in the storage
// collaborator's ephemeral key-space, so WatchState subscribers observe
// every mutation. SetUser is the single writer of both user and loggedIn,
// which keeps loggedIn == (user != nil) at all times. Strategies update the
// user through the manager, never through storage directly.
//
// # Error Propagation
//
// All failures pass through the error bus exactly once, tagged with the
// originating method name. Lifecycle calls (mounted, fetchUser, logout,
// reset) broadcast and swallow their errors, degrading to a logged-out
// session; Login broadcasts and then returns the error, so the initiating
// call site sees the failure. The busy flag always returns to false, even
// when login fails.
//
// # Concurrency
//
// The manager applies state mutations synchronously at documented points;
// observers reading state after an awaited call see fully-updated state.
// Busy is advisory for UI and does not serialize overlapping logins;
// concurrent attempts race at the storage layer with last-write-wins
// semantics, which the manager inherits unchanged.
package auth
