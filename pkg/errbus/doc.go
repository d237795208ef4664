// Package errbus implements the error broadcast channel used by the
// authentication core.
//
// Every failure inside a session lifecycle call, a login attempt, or an
// authenticated request passes through a single Bus exactly once, tagged with
// the name of the originating method, before it is either swallowed
// (lifecycle calls) or returned to the caller (login and requests). UI code
// subscribes with OnError to show toasts, force re-login, or report errors:
//
//	bus := errbus.New()
//	bus.OnError(func(err error, ctx errbus.Context) {
//		log.Printf("auth %s failed: %v", ctx.Method, err)
//	})
//
// The bus also tracks the last broadcast error so views can render the most
// recent failure without registering a listener.
package errbus
