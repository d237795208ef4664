// Package request provides the generic and authenticated request helpers
// used by authentication strategies.
//
// A Client wraps a Transport collaborator and adds three behaviors on top of
// it: endpoint specs are merged over per-strategy defaults (endpoint fields
// win), a configured response property is extracted from the JSON payload
// with a gjson path, and every failure is broadcast on the error bus tagged
// method:"request" before being returned.
//
// # Usage
//
//	client := request.NewClient(
//		request.NewHTTPTransport(request.WithBaseURL("https://api.example.com")),
//		tokens,
//		bus,
//		request.WithResponseProperty("data"),
//	)
//
//	// Plain request; returns the "data" field of the JSON response.
//	payload, err := client.Request(ctx, request.Spec{
//		Method: http.MethodPost,
//		URL:    "/login",
//		Body:   creds,
//	})
//
//	// Authenticated request; injects the token stored for "local" under the
//	// Authorization header unless the caller set one explicitly.
//	user, err := client.RequestWith(ctx, "local", request.Spec{URL: "/me"})
//
// RequestWith fails fast with ErrNoToken when no token is stored for the
// strategy, without issuing a network call.
package request
