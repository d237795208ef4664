package redis

import "errors"

var (
	// ErrEmptyConnectionURL is returned when no connection URL is provided.
	ErrEmptyConnectionURL = errors.New("redis storage: empty connection URL")
	// ErrFailedToParseConnString is returned for malformed Redis URLs.
	ErrFailedToParseConnString = errors.New("redis storage: failed to parse connection URL")
	// ErrRedisNotReady is returned when the initial ping fails.
	ErrRedisNotReady = errors.New("redis storage: redis not ready")
)
