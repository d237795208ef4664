package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Transport issues a single endpoint call. Implementations own connection
// handling, retries, and serialization of the response payload into
// Response.Data.
type Transport interface {
	Do(ctx context.Context, spec Spec) (*Response, error)
}

// HTTPTransport is the default Transport over net/http. Bodies are
// JSON-encoded unless already raw bytes; non-2xx responses are errors.
type HTTPTransport struct {
	client  *http.Client
	baseURL string
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(client *http.Client) TransportOption {
	return func(t *HTTPTransport) {
		t.client = client
	}
}

// WithBaseURL prefixes relative spec URLs with the given base.
func WithBaseURL(base string) TransportOption {
	return func(t *HTTPTransport) {
		t.baseURL = base
	}
}

// NewHTTPTransport creates a transport backed by http.DefaultClient unless
// overridden.
func NewHTTPTransport(opts ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, spec Spec) (*Response, error) {
	method := spec.Method
	if method == "" {
		method = http.MethodGet
	}

	url := spec.URL
	if t.baseURL != "" && len(url) > 0 && url[0] == '/' {
		url = t.baseURL + url
	}

	var body io.Reader
	switch b := spec.Body.(type) {
	case nil:
	case []byte:
		body = bytes.NewReader(b)
	case json.RawMessage:
		body = bytes.NewReader(b)
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, errors.Join(ErrInvalidBody, err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	if body != nil && spec.Headers["Content-Type"] == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	return &Response{
		Status: resp.StatusCode,
		Data:   data,
	}, nil
}
