package lmssdk

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"
)

// Argon2id parameters for deriving the file key from the passphrase.
const (
	credArgonTime    uint32 = 3
	credArgonMemory  uint32 = 64 * 1024
	credArgonThreads uint8  = 1

	credKeyLen  = chacha20poly1305.KeySize
	credSaltLen = 16
)

var errCredentialCorrupt = errors.New("lmssdk: credential file corrupt")

// EncryptedFileCredentialStore persists the credential encrypted at rest with
// XChaCha20-Poly1305 under an Argon2id-derived key. File layout is
// salt || nonce || ciphertext.
type EncryptedFileCredentialStore struct {
	mu         sync.Mutex
	path       string
	passphrase []byte
}

func NewEncryptedFileCredentialStore(path string, passphrase []byte) *EncryptedFileCredentialStore {
	return &EncryptedFileCredentialStore{path: path, passphrase: passphrase}
}

func (s *EncryptedFileCredentialStore) Load() (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credential{}, ErrNoCredential
		}
		return Credential{}, fmt.Errorf("read credential file: %w", err)
	}

	if len(blob) < credSaltLen+chacha20poly1305.NonceSizeX {
		return Credential{}, errCredentialCorrupt
	}

	salt := blob[:credSaltLen]
	nonce := blob[credSaltLen : credSaltLen+chacha20poly1305.NonceSizeX]
	ct := blob[credSaltLen+chacha20poly1305.NonceSizeX:]

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return Credential{}, err
	}
	plain, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return Credential{}, errCredentialCorrupt
	}

	var cred Credential
	if err := json.Unmarshal(plain, &cred); err != nil {
		return Credential{}, errCredentialCorrupt
	}
	if cred.IsZero() || cred.Expired() {
		return Credential{}, ErrNoCredential
	}
	return cred, nil
}

func (s *EncryptedFileCredentialStore) Save(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	plain, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}

	salt := make([]byte, credSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return err
	}
	nonce := make([]byte, chacha20poly1305.NonceSizeX)
	if _, err := rand.Read(nonce); err != nil {
		return err
	}

	aead, err := chacha20poly1305.NewX(s.deriveKey(salt))
	if err != nil {
		return err
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plain)+aead.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	blob = append(blob, aead.Seal(nil, nonce, plain, nil)...)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}
	if err := os.WriteFile(s.path, blob, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}

func (s *EncryptedFileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}

func (s *EncryptedFileCredentialStore) deriveKey(salt []byte) []byte {
	return argon2.IDKey(s.passphrase, salt, credArgonTime, credArgonMemory, credArgonThreads, credKeyLen)
}
