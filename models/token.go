package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set issued at login and checked on every
// protected request. The "sub" claim holds the user id.
type Claims struct {
	jwt.RegisteredClaims

	Username string `json:"username"`
	Role     string `json:"role"`
}

// Principal converts verified claims into a request principal.
//
// It fails when the subject is not a base-10 integer. A role claim outside
// the known enumeration is kept verbatim so that authorization rejects it
// as forbidden rather than unauthenticated.
func (c Claims) Principal() (Principal, error) {
	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return Principal{}, fmt.Errorf("error converting subject to user id: %w", err)
	}

	role, ok := ParseRole(c.Role)
	if !ok {
		role = Role(c.Role)
	}

	return Principal{UserID: userID, Username: c.Username, Role: role}, nil
}

// Token wraps a signed JWT together with its claims.
type Token struct {
	// Token is the underlying JWT token. Excluded from JSON because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
