package request

import "errors"

var (
	// ErrNoToken is returned by RequestWith when no token is stored for the
	// strategy. The transport is never touched in this case.
	ErrNoToken = errors.New("request: no token stored for strategy")
	// ErrRequestFailed wraps every transport-layer failure after it has been
	// broadcast on the error bus.
	ErrRequestFailed = errors.New("request: request failed")
	// ErrInvalidBody is returned when the request body cannot be encoded.
	ErrInvalidBody = errors.New("request: invalid request body")
	// ErrUnexpectedStatus is returned by HTTPTransport for non-2xx responses.
	ErrUnexpectedStatus = errors.New("request: unexpected response status")
)
