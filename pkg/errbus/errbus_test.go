package errbus_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authkit/pkg/errbus"
)

func TestBus_CallOnError(t *testing.T) {
	t.Parallel()

	t.Run("delivers to listeners in registration order", func(t *testing.T) {
		t.Parallel()

		bus := errbus.New()
		var order []string
		bus.OnError(func(err error, ctx errbus.Context) {
			order = append(order, "first")
		})
		bus.OnError(func(err error, ctx errbus.Context) {
			order = append(order, "second")
		})

		bus.CallOnError(errors.New("boom"), errbus.Context{Method: "login"})

		assert.Equal(t, []string{"first", "second"}, order)
	})

	t.Run("passes error and context through unchanged", func(t *testing.T) {
		t.Parallel()

		bus := errbus.New()
		cause := errors.New("boom")

		var gotErr error
		var gotCtx errbus.Context
		bus.OnError(func(err error, ctx errbus.Context) {
			gotErr = err
			gotCtx = ctx
		})

		bus.CallOnError(cause, errbus.Context{Method: "mounted"})

		require.ErrorIs(t, gotErr, cause)
		assert.Equal(t, "mounted", gotCtx.Method)
	})

	t.Run("duplicate listeners are called twice", func(t *testing.T) {
		t.Parallel()

		bus := errbus.New()
		calls := 0
		listener := func(err error, ctx errbus.Context) { calls++ }
		bus.OnError(listener)
		bus.OnError(listener)

		bus.CallOnError(errors.New("boom"), errbus.Context{})

		assert.Equal(t, 2, calls)
	})

	t.Run("ignores nil listeners", func(t *testing.T) {
		t.Parallel()

		bus := errbus.New()
		bus.OnError(nil)

		assert.NotPanics(t, func() {
			bus.CallOnError(errors.New("boom"), errbus.Context{})
		})
	})
}

func TestBus_LastError(t *testing.T) {
	t.Parallel()

	t.Run("records most recent error", func(t *testing.T) {
		t.Parallel()

		bus := errbus.New()
		require.NoError(t, bus.LastError())

		first := errors.New("first")
		second := errors.New("second")
		bus.CallOnError(first, errbus.Context{})
		bus.CallOnError(second, errbus.Context{})

		assert.ErrorIs(t, bus.LastError(), second)
	})

	t.Run("clear resets last error", func(t *testing.T) {
		t.Parallel()

		bus := errbus.New()
		bus.CallOnError(errors.New("boom"), errbus.Context{})
		require.Error(t, bus.LastError())

		bus.ClearError()

		assert.NoError(t, bus.LastError())
	})

	t.Run("records error even without listeners", func(t *testing.T) {
		t.Parallel()

		bus := errbus.New()
		cause := errors.New("boom")

		bus.CallOnError(cause, errbus.Context{Method: "request"})

		assert.ErrorIs(t, bus.LastError(), cause)
	})
}
