package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers any verification failure: bad signature, wrong
	// algorithm, expiry, or issuer mismatch.
	ErrInvalidToken = errors.New("jwtx: invalid token")
)

// Signer mints EdDSA-signed session tokens.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// Verifier checks a raw token and returns its claims.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// NewEphemeralSigner generates a fresh Ed25519 keypair. Sessions do not
// survive a restart, which is acceptable for an operator back-office.
func NewEphemeralSigner(kid string) (*Signer, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}
	return &Signer{kid: kid, key: key, pub: pub}, nil
}

// KID returns the key identifier stamped into token headers.
func (s *Signer) KID() string { return s.kid }

// Sign turns claims into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verifier returns a Verifier bound to this signer's public key and the given
// expected issuer.
func (s *Signer) Verifier(issuer string) Verifier {
	return &eddsaVerifier{pub: s.pub, issuer: issuer}
}

type eddsaVerifier struct {
	pub    ed25519.PublicKey
	issuer string
}

func (v *eddsaVerifier) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
				return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
			}
			return v.pub, nil
		},
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
