// Package token manages per-strategy authorization tokens on top of the
// universal storage key-space.
//
// Tokens are opaque strings keyed by a configurable prefix plus the strategy
// name, so multiple strategies can hold tokens side by side and switching
// strategies never clobbers another scheme's credentials:
//
//	tokens := token.NewStore(store) // keys like "auth._token.local"
//
//	_ = tokens.Set(ctx, "local", "Bearer eyJ...")
//	tok, _ := tokens.Get(ctx, "local")
//
// TokenStatus additionally classifies JWT values by their unverified expiry
// claim (valid / expired / unknown) for UI purposes. It deliberately performs
// no signature verification; that responsibility stays with the backend.
package token
