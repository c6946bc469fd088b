package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the configuration server for a demand exchange.
//
// It embeds [jwt.Token] for low-level operations and [jwt.RegisteredClaims]
// for standard claim access. Only the compact SignedString form ever leaves
// the server process; the claim token the client engine handles is that
// opaque string and is treated as a secret (never logged).
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard RFC 7519 claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ClientID is the client identifier cached from the "sub" claim.
	ClientID string `json:"-"`
}

// GetClientID extracts the client identifier from the token's "sub" claim.
// Returns an error if the subject claim is missing or empty.
func (t *Token) GetClientID() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting client id from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("empty subject in token")
	}

	return sub, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
