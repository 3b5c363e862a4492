package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := NewEphemeralSigner("test-key")
	require.NoError(t, err)

	claims := NewSessionClaims(
		"01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"jdoe",
		"Jane Doe",
		[]string{"admin:read", "admin:write"},
		"backoffice",
		time.Hour,
		time.Now(),
	)

	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := signer.Verifier("backoffice").Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "jdoe", got.Username)
	require.Equal(t, "Jane Doe", got.DisplayName)
	require.Equal(t, []string{"admin:read", "admin:write"}, got.Scopes)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	signer, err := NewEphemeralSigner("test-key")
	require.NoError(t, err)

	claims := NewSessionClaims("sub", "jdoe", "Jane Doe", nil, "backoffice",
		time.Minute, time.Now().Add(-time.Hour))
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verifier("backoffice").Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsForeignKeyAndIssuer(t *testing.T) {
	t.Parallel()

	signer, err := NewEphemeralSigner("a")
	require.NoError(t, err)
	other, err := NewEphemeralSigner("b")
	require.NoError(t, err)

	claims := NewSessionClaims("sub", "jdoe", "Jane Doe", nil, "backoffice",
		time.Hour, time.Now())
	raw, err := signer.Sign(claims)
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := other.Verifier("backoffice").Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := signer.Verifier("someone-else").Verify(raw)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
