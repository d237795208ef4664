package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Status classifies a stored token by its expiry claim.
type Status int

const (
	// StatusUnknown means the token is absent, not a JWT, or carries no
	// expiry claim. Unknown tokens are treated as usable; only the backend
	// can reject them.
	StatusUnknown Status = iota
	// StatusValid means the token carries an expiry claim in the future.
	StatusValid
	// StatusExpired means the token carries an expiry claim in the past.
	StatusExpired
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "valid"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Expired reports whether the token is known to be expired.
func (s Status) Expired() bool {
	return s == StatusExpired
}

// TokenStatus inspects the expiry claim of a JWT without verifying its
// signature. Verification belongs to the issuing backend; this is purely
// client-side bookkeeping so the UI can prompt for re-login before a request
// is rejected. An optional "Bearer " scheme prefix is tolerated.
func TokenStatus(token string) Status {
	raw := strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if raw == "" {
		return StatusUnknown
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return StatusUnknown
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return StatusUnknown
	}

	if time.Now().After(exp.Time) {
		return StatusExpired
	}
	return StatusValid
}
