package auth

import "errors"

var (
	// ErrNoStorage is returned by New when no storage collaborator is set.
	ErrNoStorage = errors.New("auth: no storage configured")
)
