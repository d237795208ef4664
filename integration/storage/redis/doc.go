// Package redis provides a Redis-backed implementation of the storage
// contract consumed by the authentication core.
//
// Universal values (strategy name, tokens, redirect targets) are persisted
// in Redis under a configurable key prefix so they survive reloads and are
// shared across processes. Ephemeral session state and WatchState
// subscriptions remain in-process, embedded from the in-memory storage;
// replicating live state is out of scope here.
//
// # Usage
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	store, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer store.Close()
//
//	manager, err := auth.New(auth.WithStorage(store))
//
// Connect validates the redis:// or rediss:// URL, verifies connectivity
// with a ping, and fails fast with ErrRedisNotReady when the server is
// unreachable. An optional TTL expires universal keys, which bounds how
// long an abandoned session's tokens linger.
package redis
