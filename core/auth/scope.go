package auth

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// HasScope evaluates the configured scope claim of the current user against
// scope.
//
// The second return value distinguishes "denied" from "unknown": it is false
// when no user is present or the claim is absent or empty, mirroring a
// tri-state check where an application may fall back to a server-side
// decision. When the claim is a list, granted reports membership; otherwise
// the claim is treated as a map and granted reports whether the named
// sub-claim is truthy.
func (m *Manager) HasScope(scope string) (granted, known bool) {
	user := m.User()
	if user == nil {
		return false, false
	}

	data, err := toJSON(user)
	if err != nil {
		return false, false
	}

	claim := gjson.GetBytes(data, m.cfg.ScopeKey)
	if !truthy(claim) {
		return false, false
	}

	if claim.IsArray() {
		for _, v := range claim.Array() {
			if v.String() == scope {
				return true, true
			}
		}
		return false, true
	}

	return truthy(claim.Get(scope)), true
}

// toJSON renders the opaque user record as JSON for claim-path evaluation.
func toJSON(user any) ([]byte, error) {
	switch u := user.(type) {
	case json.RawMessage:
		return u, nil
	case []byte:
		return u, nil
	default:
		return json.Marshal(u)
	}
}

// truthy applies loose truthiness to a claim value: absent, null, false,
// zero, and the empty string are all falsy; arrays and objects are truthy
// even when empty.
func truthy(v gjson.Result) bool {
	if !v.Exists() {
		return false
	}
	switch v.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return true
	}
}
