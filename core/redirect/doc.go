// Package redirect implements the navigation policy for authentication
// transitions.
//
// An Engine maps named events (login, logout, home, callback) to configured
// destination paths and executes navigation through a Router collaborator.
// Two safety behaviors are always applied:
//
//   - Loop prevention: navigation is aborted when the resolved destination
//     normalizes to the current path, so a logged-out user sitting on the
//     login page is not redirected to the login page again.
//   - Origin confinement: persisted deep-link targets must be same-origin
//     relative paths; absolute and protocol-relative URLs are ignored.
//
// With RewriteRedirects enabled the engine restores deep links: redirecting
// to login from /settings/billing persists that path, and the next home
// redirect (after successful login) navigates back to /settings/billing
// instead of the configured home destination. The persisted target is
// cleared after a single use.
//
//	engine := redirect.NewEngine(router, store, redirect.RedirectMap{
//		redirect.EventLogin:  "/login",
//		redirect.EventLogout: "/login",
//		redirect.EventHome:   "/",
//	})
//
//	engine.Redirect(ctx, redirect.EventLogin, false)
package redirect
