package redirect

// Router is the routing/navigation collaborator the engine drives.
//
// Path and FullPath describe the current route; RouteOptions exposes the
// per-route options map (the engine's consumers use it for auth opt-outs).
// Redirect navigates through the router; Replace performs a full-page
// replace and is only meaningful client-side.
type Router interface {
	Path() string
	FullPath() string
	RouteOptions() map[string]any
	Redirect(to string)
	Replace(to string)
}
