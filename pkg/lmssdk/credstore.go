package lmssdk

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// CredentialStore owns the persisted bearer credential. The transport is the
// only writer; everything else reads through it. Implementations must be safe
// for concurrent use.
type CredentialStore interface {
	// Load returns the stored credential. ErrNoCredential means the store
	// is empty or holds only an expired credential.
	Load() (Credential, error)

	// Save overwrites the stored credential.
	Save(Credential) error

	// Clear removes the stored credential. Clearing an empty store is not
	// an error.
	Clear() error
}

// MemoryCredentialStore keeps the credential in process memory. It is the
// default store and the one tests use.
type MemoryCredentialStore struct {
	mu   sync.RWMutex
	cred Credential
}

func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (s *MemoryCredentialStore) Load() (Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cred.IsZero() || s.cred.Expired() {
		return Credential{}, ErrNoCredential
	}
	return s.cred, nil
}

func (s *MemoryCredentialStore) Save(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = cred
	return nil
}

func (s *MemoryCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = Credential{}
	return nil
}

// FileCredentialStore persists the credential as a JSON file with 0600
// permissions. This is the browser-cookie analogue for CLI and daemon
// consumers: the credential survives restarts but expires on its own.
type FileCredentialStore struct {
	mu   sync.Mutex
	path string
}

// NewFileCredentialStore creates a store backed by the given file path.
// Parent directories are created on first Save.
func NewFileCredentialStore(path string) *FileCredentialStore {
	return &FileCredentialStore{path: path}
}

// DefaultCredentialPath returns the conventional credential location under
// the user config directory.
func DefaultCredentialPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "lms", "credential.json"), nil
}

func (s *FileCredentialStore) Load() (Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Credential{}, ErrNoCredential
		}
		return Credential{}, fmt.Errorf("read credential file: %w", err)
	}

	var cred Credential
	if err := json.Unmarshal(b, &cred); err != nil {
		return Credential{}, fmt.Errorf("decode credential file: %w", err)
	}
	if cred.IsZero() || cred.Expired() {
		return Credential{}, ErrNoCredential
	}
	return cred, nil
}

func (s *FileCredentialStore) Save(cred Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credential dir: %w", err)
	}

	b, err := json.MarshalIndent(cred, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o600); err != nil {
		return fmt.Errorf("write credential file: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove credential file: %w", err)
	}
	return nil
}
