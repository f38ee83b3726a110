package httpx_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/ultracoach/ultracoach/pkg/httpx"
	"github.com/ultracoach/ultracoach/pkg/jwtx"
)

func newTestSigner(t *testing.T) *jwtx.EdDSASigner {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return jwtx.NewSignerFromKey("test-key", priv)
}

func mintToken(t *testing.T, signer *jwtx.EdDSASigner, subject, role string) string {
	t.Helper()

	claims := jwtx.NewSessionClaims(subject, role, "t@example.com", "Test User",
		"testissuer", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func TestAuthnMiddleware(t *testing.T) {
	signer := newTestSigner(t)
	verifier := signer.Verifier("testissuer")

	echoUser := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(httpx.UserIDFromCtx(r.Context())))
	})
	protected := httpx.Chain(echoUser, httpx.AuthnMiddleware(verifier))

	t.Run("injects the subject into the context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, signer, "user-123", "coach"))
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "user-123", rec.Body.String())
	})

	t.Run("missing bearer", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "UNAUTHORIZED", body["error"])
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rec := httptest.NewRecorder()

		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		otherVerifier := signer.Verifier("someone-else")
		handler := httpx.Chain(echoUser, httpx.AuthnMiddleware(otherVerifier))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, signer, "user-123", "coach"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	signer := newTestSigner(t)
	verifier := signer.Verifier("testissuer")

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	coachOnly := httpx.Chain(ok,
		httpx.AuthnMiddleware(verifier),
		httpx.RequireRole("coach"),
	)

	t.Run("allows a matching role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, signer, "user-1", "coach"))
		rec := httptest.NewRecorder()

		coachOnly.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blocks other roles", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+mintToken(t, signer, "user-2", "runner"))
		rec := httptest.NewRecorder()

		coachOnly.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "FORBIDDEN", body["error"])
	})
}
