package auth_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/core/auth"
)

func TestManager_HasScope(t *testing.T) {
	t.Parallel()

	t.Run("unknown without user", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)

		granted, known := mgr.HasScope("admin")
		assert.False(t, granted)
		assert.False(t, known)
	})

	t.Run("unknown when claim is absent", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)
		mgr.SetUser(map[string]any{"id": 1})

		granted, known := mgr.HasScope("admin")
		assert.False(t, granted)
		assert.False(t, known)
	})

	t.Run("unknown when claim is null or empty", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)

		for _, user := range []string{
			`{"scope":null}`,
			`{"scope":""}`,
			`{"scope":false}`,
		} {
			mgr.SetUser(json.RawMessage(user))
			granted, known := mgr.HasScope("admin")
			assert.False(t, granted, user)
			assert.False(t, known, user)
		}
	})

	t.Run("list claim reports membership", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)
		mgr.SetUser(json.RawMessage(`{"scope":["read","admin"]}`))

		granted, known := mgr.HasScope("admin")
		assert.True(t, granted)
		assert.True(t, known)

		granted, known = mgr.HasScope("write")
		assert.False(t, granted)
		assert.True(t, known)
	})

	t.Run("map claim reports truthiness of sub-claim", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)
		mgr.SetUser(json.RawMessage(`{"scope":{"admin":true,"write":false}}`))

		granted, known := mgr.HasScope("admin")
		assert.True(t, granted)
		assert.True(t, known)

		granted, known = mgr.HasScope("write")
		assert.False(t, granted)
		assert.True(t, known)

		granted, known = mgr.HasScope("delete")
		assert.False(t, granted)
		assert.True(t, known)
	})

	t.Run("scope key follows nested gjson paths", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t, auth.WithConfig(auth.Config{
			DefaultStrategy: "local",
			ScopeKey:        "permissions.scopes",
		}))
		mgr.SetUser(json.RawMessage(`{"permissions":{"scopes":["billing"]}}`))

		granted, known := mgr.HasScope("billing")
		assert.True(t, granted)
		assert.True(t, known)
	})

	t.Run("works with marshalable user structs", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)
		mgr.SetUser(struct {
			ID    int      `json:"id"`
			Scope []string `json:"scope"`
		}{ID: 1, Scope: []string{"admin"}})

		granted, known := mgr.HasScope("admin")
		assert.True(t, granted)
		assert.True(t, known)
	})

	t.Run("unmarshalable user is unknown", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)
		mgr.SetUser(make(chan int))

		granted, known := mgr.HasScope("admin")
		assert.False(t, granted)
		assert.False(t, known)
	})
}

func TestManager_Strategy(t *testing.T) {
	t.Parallel()

	t.Run("empty before init", func(t *testing.T) {
		t.Parallel()

		mgr, _ := newManager(t)
		require.Empty(t, mgr.Strategy())
	})
}
