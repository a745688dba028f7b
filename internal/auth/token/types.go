package token

import (
	"encoding/json"

	jwtx "github.com/golang-jwt/jwt/v4"
)

// Claims is the verified claim set for an authenticated user. Only the
// subject is guaranteed present; identity providers differ in which of the
// name fields they populate, and some omit all of them.
type Claims struct {
	Email                 string `json:"email,omitempty"`              // User email address
	Name                  string `json:"name,omitempty"`               // Full human name
	Nickname              string `json:"nickname,omitempty"`           // Short informal name
	PreferredUsername     string `json:"preferred_username,omitempty"` // Provider-chosen username
	Picture               string `json:"picture,omitempty"`            // Avatar URL
	jwtx.RegisteredClaims        // Embedded standard JWT claims (sub, exp, iat, ...)

	// Extra collects claim fields this struct does not model, so new
	// provider claims survive a round trip without a schema change.
	Extra map[string]any `json:"-"`
}

// knownClaimFields are the payload keys captured by named Claims fields and
// by the embedded registered claim set.
var knownClaimFields = map[string]struct{}{
	"email": {}, "name": {}, "nickname": {}, "preferred_username": {}, "picture": {},
	"iss": {}, "sub": {}, "aud": {}, "exp": {}, "nbf": {}, "iat": {}, "jti": {},
}

// UnmarshalJSON decodes the named fields and then sweeps every unrecognized
// payload key into Extra.
func (c *Claims) UnmarshalJSON(data []byte) error {
	type plain Claims
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range knownClaimFields {
		delete(raw, key)
	}
	if len(raw) > 0 {
		p.Extra = make(map[string]any, len(raw))
		for key, val := range raw {
			var v any
			if err := json.Unmarshal(val, &v); err != nil {
				return err
			}
			p.Extra[key] = v
		}
	}

	*c = Claims(p)
	return nil
}

// CreateTokenParams contains the parameters required to generate a token for a user.
type CreateTokenParams struct {
	Subject           string // Stable provider-qualified user identifier
	Email             string
	Name              string
	Nickname          string
	PreferredUsername string
	Picture           string
}
