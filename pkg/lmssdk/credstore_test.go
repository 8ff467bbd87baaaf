package lmssdk

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validCredential() Credential {
	return Credential{
		AccessToken: "token-123",
		ExpiresAt:   time.Now().Add(time.Hour).Truncate(time.Second),
	}
}

func TestMemoryCredentialStore(t *testing.T) {
	t.Parallel()

	store := NewMemoryCredentialStore()

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNoCredential)

	want := validCredential()
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestMemoryCredentialStoreRejectsExpired(t *testing.T) {
	t.Parallel()

	store := NewMemoryCredentialStore()
	require.NoError(t, store.Save(Credential{
		AccessToken: "stale",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}))

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestFileCredentialStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "credential.json")
	store := NewFileCredentialStore(path)

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNoCredential)

	want := validCredential()
	require.NoError(t, store.Save(want))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// A fresh store over the same path sees the credential.
	got, err := NewFileCredentialStore(path).Load()
	require.NoError(t, err)
	require.Equal(t, want.AccessToken, got.AccessToken)
	require.True(t, got.ExpiresAt.Equal(want.ExpiresAt))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing twice is fine")
	_, err = store.Load()
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestFileCredentialStoreRejectsExpired(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credential.json")
	store := NewFileCredentialStore(path)

	require.NoError(t, store.Save(Credential{
		AccessToken: "stale",
		ExpiresAt:   time.Now().Add(-time.Minute),
	}))

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNoCredential)
}

func TestEncryptedFileCredentialStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credential.bin")
	passphrase := []byte("correct horse battery staple")
	store := NewEncryptedFileCredentialStore(path, passphrase)

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNoCredential)

	want := validCredential()
	require.NoError(t, store.Save(want))

	// The token must not appear in the file as plaintext.
	blob, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotContains(t, string(blob), want.AccessToken)

	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, want.AccessToken, got.AccessToken)

	t.Run("wrong passphrase", func(t *testing.T) {
		other := NewEncryptedFileCredentialStore(path, []byte("wrong"))
		_, err := other.Load()
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNoCredential)
	})

	t.Run("tampered ciphertext", func(t *testing.T) {
		tampered := append([]byte(nil), blob...)
		tampered[len(tampered)-1] ^= 0xff
		require.NoError(t, os.WriteFile(path, tampered, 0o600))

		_, err := store.Load()
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNoCredential)
	})

	t.Run("truncated file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, blob[:8], 0o600))

		_, err := store.Load()
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNoCredential)
	})
}
