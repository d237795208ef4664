package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/authkit/core/storage"
)

// Config holds Redis storage configuration with environment variable mapping.
type Config struct {
	ConnectionURL string        `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	KeyPrefix     string        `env:"AUTH_REDIS_KEY_PREFIX" envDefault:"authkit:"`
	TTL           time.Duration `env:"AUTH_REDIS_TTL" envDefault:"0"`
}

// Storage keeps the universal key-space in Redis while ephemeral state and
// watch subscriptions stay in-process. Universal keys are namespaced with a
// configurable prefix and optionally expire after a TTL.
type Storage struct {
	*storage.Memory

	client goredis.UniversalClient
	prefix string
	ttl    time.Duration
}

// Option configures a Storage.
type Option func(*Storage)

// WithKeyPrefix overrides the Redis key prefix.
func WithKeyPrefix(prefix string) Option {
	return func(s *Storage) {
		s.prefix = prefix
	}
}

// WithTTL sets an expiry on universal keys. Zero keeps them forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *Storage) {
		s.ttl = ttl
	}
}

// New creates a Redis-backed storage over an existing client.
func New(client goredis.UniversalClient, opts ...Option) *Storage {
	s := &Storage{
		Memory: storage.NewMemory(),
		client: client,
		prefix: "authkit:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect creates a Redis client from cfg, verifies connectivity with a
// ping, and returns a storage over it.
func Connect(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	redisOpts, err := goredis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConnString, err)
	}

	client := goredis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}

	return New(client,
		WithKeyPrefix(cfg.KeyPrefix),
		WithTTL(cfg.TTL),
	), nil
}

// Close releases the underlying Redis client.
func (s *Storage) Close() error {
	return s.client.Close()
}

func (s *Storage) key(key string) string {
	return s.prefix + key
}

// GetUniversal returns the persisted value for key, or "" when absent.
func (s *Storage) GetUniversal(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetUniversal persists value under key with the configured TTL.
func (s *Storage) SetUniversal(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, s.key(key), value, s.ttl).Err()
}

// RemoveUniversal deletes the persisted value for key.
func (s *Storage) RemoveUniversal(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// SyncUniversal resolves the persisted value for key against fallback and
// writes the resolved value back, refreshing its TTL.
func (s *Storage) SyncUniversal(ctx context.Context, key, fallback string) (string, error) {
	value, err := s.GetUniversal(ctx, key)
	if err != nil {
		return "", err
	}
	if value == "" {
		value = fallback
	}
	if value != "" {
		if err := s.SetUniversal(ctx, key, value); err != nil {
			return "", err
		}
	}
	return value, nil
}
