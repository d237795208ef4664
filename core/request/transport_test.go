package request_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/request"
)

func TestHTTPTransport_Do(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("issues request and returns payload", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/me", r.URL.Path)
			w.Write([]byte(`{"id":1}`))
		}))
		defer srv.Close()

		transport := request.NewHTTPTransport()
		resp, err := transport.Do(ctx, request.Spec{URL: srv.URL + "/me"})

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.Status)
		assert.JSONEq(t, `{"id":1}`, string(resp.Data))
	})

	t.Run("JSON-encodes struct bodies with content type", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"email":"a@b.c"}`, string(body))
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		transport := request.NewHTTPTransport()
		_, err := transport.Do(ctx, request.Spec{
			Method: http.MethodPost,
			URL:    srv.URL + "/login",
			Body:   map[string]string{"email": "a@b.c"},
		})

		require.NoError(t, err)
	})

	t.Run("passes raw byte bodies through unchanged", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, `{"raw":true}`, string(body))
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		transport := request.NewHTTPTransport()
		_, err := transport.Do(ctx, request.Spec{
			Method: http.MethodPost,
			URL:    srv.URL + "/raw",
			Body:   json.RawMessage(`{"raw":true}`),
		})

		require.NoError(t, err)
	})

	t.Run("sends spec headers", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		transport := request.NewHTTPTransport()
		_, err := transport.Do(ctx, request.Spec{
			URL:     srv.URL + "/me",
			Headers: map[string]string{"Authorization": "Bearer abc"},
		})

		require.NoError(t, err)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusUnauthorized)
		}))
		defer srv.Close()

		transport := request.NewHTTPTransport()
		_, err := transport.Do(ctx, request.Spec{URL: srv.URL + "/me"})

		require.Error(t, err)
		assert.ErrorIs(t, err, request.ErrUnexpectedStatus)
	})

	t.Run("prefixes relative URLs with the base URL", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/me", r.URL.Path)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		transport := request.NewHTTPTransport(request.WithBaseURL(srv.URL + "/api"))
		_, err := transport.Do(ctx, request.Spec{URL: "/me"})

		require.NoError(t, err)
	})

	t.Run("defaults to GET when method is empty", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		transport := request.NewHTTPTransport()
		_, err := transport.Do(ctx, request.Spec{URL: srv.URL})

		require.NoError(t, err)
	})
}
