package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued by the server.
//
// The user identifier travels in the standard "sub" claim; Role is a private
// claim. ExpiresAt may be absent, in which case the token never expires.
type Claims struct {
	// Role is the access tier of the account the token was issued for.
	Role Role `json:"role"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, iss, jti) as defined by RFC 7519.
	jwt.RegisteredClaims
}

// Token wraps a signed JWT together with its claims.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted to the client.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Claims are the claims embedded in the token.
	Claims Claims `json:"-"`
}

// Identity returns the identity carried by the token claims.
func (t Token) Identity() Identity {
	return Identity{UserID: t.Claims.Subject, Role: t.Claims.Role}
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// Identity is the {user id, role} pair resolved from a verified token.
type Identity struct {
	UserID string
	Role   Role
}
