package request

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/authkit/core/logger"
	"github.com/dmitrymomot/authkit/core/token"
	"github.com/dmitrymomot/authkit/pkg/errbus"
)

// DefaultAuthHeader is the header tokens are injected under.
const DefaultAuthHeader = "Authorization"

// Spec describes a single endpoint call. Zero fields are filled from the
// defaults spec when one is supplied to Request or RequestWith.
type Spec struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    any
}

// Response is the transport result. Data carries the raw JSON payload.
type Response struct {
	Status int
	Data   json.RawMessage
}

// Client layers generic and authenticated request helpers over a Transport.
//
// Every transport failure is broadcast on the error bus tagged
// method:"request" before being returned to the caller.
type Client struct {
	transport Transport
	tokens    *token.Store
	bus       *errbus.Bus
	property  string
	header    string
	log       *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithResponseProperty sets a gjson path extracted from every response
// payload. When set, Request returns only that nested field; when the field
// is absent, Request returns nil. Empty path returns the full payload.
func WithResponseProperty(path string) ClientOption {
	return func(c *Client) {
		c.property = path
	}
}

// WithAuthHeader overrides the header name tokens are injected under.
func WithAuthHeader(name string) ClientOption {
	return func(c *Client) {
		c.header = name
	}
}

// WithClientLogger sets the logger used for request failures.
func WithClientLogger(log *slog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a request client over the given transport. The token
// store backs RequestWith; the bus receives every failure.
func NewClient(t Transport, tokens *token.Store, bus *errbus.Bus, opts ...ClientOption) *Client {
	c := &Client{
		transport: t,
		tokens:    tokens,
		bus:       bus,
		header:    DefaultAuthHeader,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Request merges spec over the optional defaults (spec fields win), issues
// the call, and extracts the configured response property when one is set.
func (c *Client) Request(ctx context.Context, spec Spec, defaults ...Spec) (json.RawMessage, error) {
	merged := spec
	if len(defaults) > 0 {
		merged = mergeSpec(spec, defaults[0])
	}

	resp, err := c.transport.Do(ctx, merged)
	if err != nil {
		err = errors.Join(ErrRequestFailed, err)
		c.bus.CallOnError(err, errbus.Context{Method: "request"})
		c.log.Error("request failed",
			logger.Component("request"),
			logger.Method(merged.Method),
			logger.Key("url", merged.URL),
			logger.Error(err),
		)
		return nil, err
	}

	if c.property == "" {
		return resp.Data, nil
	}
	field := gjson.GetBytes(resp.Data, c.property)
	if !field.Exists() {
		return nil, nil
	}
	return json.RawMessage(field.Raw), nil
}

// RequestWith resolves the token stored for strategy and issues an
// authenticated request. An unset or empty token is broadcast on the error
// bus and fails with ErrNoToken before the transport is touched. The token
// is injected under the configured authorization header only when the
// caller has not already set that header explicitly.
func (c *Client) RequestWith(ctx context.Context, strategy string, spec Spec, defaults ...Spec) (json.RawMessage, error) {
	tok, err := c.tokens.Get(ctx, strategy)
	if err != nil {
		return nil, err
	}
	if tok == "" {
		c.bus.CallOnError(ErrNoToken, errbus.Context{Method: "request"})
		return nil, ErrNoToken
	}

	merged := spec
	if len(defaults) > 0 {
		merged = mergeSpec(spec, defaults[0])
	}

	// Injection works on a copy so caller-owned header maps never acquire
	// the token.
	headers := make(map[string]string, len(merged.Headers)+1)
	for k, v := range merged.Headers {
		headers[k] = v
	}
	if _, set := headers[c.header]; !set {
		headers[c.header] = tok
	}
	merged.Headers = headers

	return c.Request(ctx, merged)
}

// mergeSpec overlays spec on top of defaults; endpoint-specific fields win.
func mergeSpec(spec, defaults Spec) Spec {
	merged := defaults
	if spec.Method != "" {
		merged.Method = spec.Method
	}
	if spec.URL != "" {
		merged.URL = spec.URL
	}
	if spec.Body != nil {
		merged.Body = spec.Body
	}
	// Always hand out a fresh map: the merged spec must not alias either
	// input's headers.
	if len(spec.Headers) > 0 || len(defaults.Headers) > 0 {
		headers := make(map[string]string, len(defaults.Headers)+len(spec.Headers))
		for k, v := range defaults.Headers {
			headers[k] = v
		}
		for k, v := range spec.Headers {
			headers[k] = v
		}
		merged.Headers = headers
	}
	return merged
}
