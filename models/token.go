package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set embedded in every issued session token.
//
// It carries the public identity facts of the authenticated user alongside
// the standard registered claims (sub, iss, iat, exp). The JSON field names
// match the wire contract consumed by the frontend.
type SessionClaims struct {
	jwt.RegisteredClaims

	// UserID duplicates the "sub" claim under the field name the frontend
	// expects. Always a UUID string.
	UserID string `json:"userId"`

	// Email is the account email at the time the token was issued.
	Email string `json:"email"`

	// Name is the optional display name of the user.
	Name string `json:"name,omitempty"`

	// IsAdmin is the privilege flag copied from the user record.
	IsAdmin bool `json:"isAdmin"`
}

// Token wraps a session JWT with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [SessionClaims] for direct claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in a Set-Cookie header.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SessionClaims provides access to the decoded claim set.
	SessionClaims

	// SignedString is the compact JWS representation of the token.
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
