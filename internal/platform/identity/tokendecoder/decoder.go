package tokendecoder

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformed indicates the credential is not a structurally valid JWT.
	ErrMalformed = errors.New("malformed token")
	// ErrIncompleteClaims indicates a decodable token whose payload lacks a
	// non-empty sub or email claim.
	ErrIncompleteClaims = errors.New("token missing required claims")
)

// Claims is the decoded, unverified token payload. Registered claims
// (iss, aud, exp, ...) are carried but not checked by this package.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Decode extracts the claim payload from a bearer credential without checking
// the signature, expiry, or issuer. The upstream identity provider is trusted
// to have verified signing before the request reached this service.
//
// Decode is a pure function of its input.
func Decode(raw string) (Claims, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return Claims{}, ErrMalformed
	}
	if claims.Subject == "" || claims.Email == "" {
		return Claims{}, ErrIncompleteClaims
	}
	return claims, nil
}
