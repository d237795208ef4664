// Package config provides type-safe environment variable loading with
// caching using Go generics. Each configuration type is loaded once and
// cached for subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/authkit/core/config"
//
//	type RedisConfig struct {
//		ConnectionURL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
//	}
//
//	func main() {
//		var cfg RedisConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var a RedisConfig
//	config.Load(&a) // Loads from environment
//
//	var b RedisConfig
//	config.Load(&b) // Returns cached value, a == b
//
// Different types are cached independently.
package config
