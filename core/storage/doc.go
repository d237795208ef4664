// Package storage defines the persistence contract consumed by the
// authentication core and provides an in-memory reference implementation.
//
// The Storage interface separates two key-spaces with different lifetimes:
//
//   - Ephemeral state holds the live session fields (user, loggedIn, busy,
//     strategy). It is synchronous, in-memory, and observable through
//     WatchState subscriptions that fire on every mutation.
//   - Universal values are persisted across reloads and synced across
//     surfaces: the active strategy name, tokens, and redirect targets.
//     Universal operations are context-aware because implementations may
//     reach a network store.
//
// # Usage
//
//	store := storage.NewMemory()
//
//	unwatch := store.WatchState("loggedIn", func(v any) {
//		fmt.Println("loggedIn is now", v)
//	})
//	defer unwatch()
//
//	store.SetState("loggedIn", true) // watcher fires synchronously
//
//	_ = store.SetUniversal(ctx, "auth.strategy", "local")
//	name, _ := store.SyncUniversal(ctx, "auth.strategy", "local")
//
// For a persisted, cross-process backend see
// github.com/dmitrymomot/authkit/integration/storage/redis.
package storage
