package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the default lifetime of an admin session token.
const DefaultSessionTTL = 1 * time.Hour

// Claims are the session-token claims for back-office operators. The display
// name rides along so handlers can attribute actions to the principal without
// another account lookup.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated operator.
	Username string `json:"username,omitempty"`

	// DisplayName is the human-readable name used for attribution in
	// confirmation messages.
	DisplayName string `json:"display_name,omitempty"`

	// Scopes derived from the operator's role assignments,
	// e.g. "admin:read admin:write".
	Scopes []string `json:"scopes,omitempty"`
}

// NewSessionClaims builds minimally-correct claims for an operator session.
func NewSessionClaims(
	subject, username, displayName string,
	scopes []string,
	issuer string,
	ttl time.Duration,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        newJTI(),
		},
		Username:    username,
		DisplayName: displayName,
		Scopes:      scopes,
	}
}

// newJTI returns a URL-safe random identifier for the "jti" claim.
func newJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
