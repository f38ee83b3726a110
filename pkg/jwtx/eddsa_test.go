package jwtx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *EdDSASigner {
	t.Helper()

	pemKey, err := GenerateEd25519PEM()
	require.NoError(t, err)

	signer, err := NewSignerEdDSA("test-key", pemKey)
	require.NoError(t, err)
	require.True(t, signer.Ready())
	return signer
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	verifier := signer.Verifier("ultracoach")

	claims := NewSessionClaims(
		"user-123", "coach", "coach@example.com", "Coach Carter",
		"ultracoach", time.Hour, time.Now().UTC(),
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.Equal(t, "coach", got.Role)
	require.Equal(t, "coach@example.com", got.Email)
	require.NotEmpty(t, got.ID, "jti should be set")
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)
	other := newTestSigner(t)

	claims := NewSessionClaims("u", "runner", "", "", "ultracoach", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = other.Verifier("ultracoach").Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)

	claims := NewSessionClaims("u", "runner", "", "", "ultracoach", time.Hour, time.Now().UTC().Add(-2*time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verifier("ultracoach").Verify(token)
	require.Error(t, err)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t)

	claims := NewSessionClaims("u", "coach", "", "", "someone-else", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = signer.Verifier("ultracoach").Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}
