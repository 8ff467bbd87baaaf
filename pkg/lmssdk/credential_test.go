package lmssdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func signedTokenWithExp(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func TestNewCredentialExpiry(t *testing.T) {
	t.Parallel()

	t.Run("backend expiry wins", func(t *testing.T) {
		t.Parallel()

		want := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
		cred := NewCredential("opaque-token", want.Format(time.RFC3339))
		require.True(t, cred.ExpiresAt.Equal(want))
	})

	t.Run("falls back to jwt exp claim", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
		token := signedTokenWithExp(t, exp)

		cred := NewCredential(token, "")
		require.True(t, cred.ExpiresAt.Equal(exp))
	})

	t.Run("malformed expiry falls back to jwt exp claim", func(t *testing.T) {
		t.Parallel()

		exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
		token := signedTokenWithExp(t, exp)

		cred := NewCredential(token, "not-a-timestamp")
		require.True(t, cred.ExpiresAt.Equal(exp))
	})

	t.Run("opaque token gets default ttl", func(t *testing.T) {
		t.Parallel()

		before := time.Now()
		cred := NewCredential("not-a-jwt", "")

		require.WithinDuration(t, before.Add(defaultCredentialTTL), cred.ExpiresAt, 5*time.Second)
	})
}

func TestCredentialState(t *testing.T) {
	t.Parallel()

	require.True(t, Credential{}.IsZero())
	require.False(t, Credential{AccessToken: "t"}.IsZero())

	require.False(t, Credential{AccessToken: "t"}.Expired(), "zero expiry never expires")
	require.True(t, Credential{
		AccessToken: "t",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}.Expired())
	require.False(t, Credential{
		AccessToken: "t",
		ExpiresAt:   time.Now().Add(time.Minute),
	}.Expired())
}
