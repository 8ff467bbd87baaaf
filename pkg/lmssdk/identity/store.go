// Package identity resolves the authenticated session's domain profile
// (teacher or student record) and caches the mapping from the session's user
// id to the profile id. Profiles missing server-side are auto-provisioned
// with defaults, so a brand-new account resolves the same as an old one.
package identity

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Role selects which domain profile the resolver targets.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// DefaultTTL bounds how long a cached mapping is trusted before forcing
// re-resolution. Matches the one-day lifetime the backend uses for its own
// session cookies.
const DefaultTTL = 24 * time.Hour

var (
	// ErrCacheMiss indicates no usable cached identity.
	ErrCacheMiss = errors.New("identity: cache miss")

	// ErrInvalidUserID indicates the session endpoint returned a user id
	// that could not be parsed.
	ErrInvalidUserID = errors.New("identity: invalid user id in session")
)

// Identity is the cached mapping from an authenticated user to their domain
// profile. A mapping is valid only while OwnerUserID matches the live
// session's user id.
type Identity struct {
	Role        Role
	ProfileID   int64
	OwnerUserID int64
	ExpiresAt   time.Time
}

func (id Identity) expired() bool {
	return !id.ExpiresAt.IsZero() && time.Now().After(id.ExpiresAt)
}

// Store is the cache backing for resolved identities, keyed by role. The
// in-memory implementation serves tests and single-run consumers; the sqlite
// driver persists across restarts.
type Store interface {
	// Get returns the cached identity for a role, or ErrCacheMiss.
	Get(ctx context.Context, role Role) (Identity, error)

	// Put stores an identity, replacing any previous entry for its role.
	Put(ctx context.Context, id Identity) error

	// Clear drops every cached entry. Used on logout.
	Clear(ctx context.Context) error
}

// MemoryStore is an in-memory Store implementation.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[Role]Identity
	ttl     time.Duration
}

// NewMemoryStore creates an in-memory store with the default TTL.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[Role]Identity),
		ttl:     DefaultTTL,
	}
}

// NewMemoryStoreTTL creates an in-memory store with a custom TTL. A zero ttl
// disables expiry.
func NewMemoryStoreTTL(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[Role]Identity),
		ttl:     ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, role Role) (Identity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.entries[role]
	if !ok || id.expired() {
		return Identity{}, ErrCacheMiss
	}
	return id, nil
}

func (s *MemoryStore) Put(_ context.Context, id Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id.ExpiresAt.IsZero() && s.ttl > 0 {
		id.ExpiresAt = time.Now().Add(s.ttl)
	}
	s.entries[id.Role] = id
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[Role]Identity)
	return nil
}
