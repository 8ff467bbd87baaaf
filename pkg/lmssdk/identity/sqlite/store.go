// Package sqlite provides a persistent identity.Store backed by SQLite, for
// consumers that need resolved identities to survive restarts.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jonny-tran/lms-math-exam/pkg/lmssdk/identity"
)

// Store is a sqlite-backed identity cache. One row per role; entries expire
// lazily on read.
type Store struct {
	db  *sql.DB
	ttl time.Duration
}

// NewStore opens (or creates) the database at dsn and applies migrations.
func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db, ttl: identity.DefaultTTL}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// SetTTL overrides the entry lifetime. A zero ttl disables expiry.
func (s *Store) SetTTL(ttl time.Duration) { s.ttl = ttl }

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Get(ctx context.Context, role identity.Role) (identity.Identity, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT profile_id, owner_user_id, expires_at
		FROM identity_cache
		WHERE role = ?`, string(role))

	var id identity.Identity
	var expiresAt int64
	if err := row.Scan(&id.ProfileID, &id.OwnerUserID, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return identity.Identity{}, identity.ErrCacheMiss
		}
		return identity.Identity{}, err
	}

	id.Role = role
	if expiresAt > 0 {
		id.ExpiresAt = time.Unix(expiresAt, 0)
		if time.Now().After(id.ExpiresAt) {
			_, _ = s.db.ExecContext(ctx,
				`DELETE FROM identity_cache WHERE role = ?`, string(role))
			return identity.Identity{}, identity.ErrCacheMiss
		}
	}
	return id, nil
}

func (s *Store) Put(ctx context.Context, id identity.Identity) error {
	expiresAt := id.ExpiresAt
	if expiresAt.IsZero() && s.ttl > 0 {
		expiresAt = time.Now().Add(s.ttl)
	}

	var unix int64
	if !expiresAt.IsZero() {
		unix = expiresAt.Unix()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO identity_cache (role, profile_id, owner_user_id, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(role) DO UPDATE SET
			profile_id = excluded.profile_id,
			owner_user_id = excluded.owner_user_id,
			expires_at = excluded.expires_at`,
		string(id.Role), id.ProfileID, id.OwnerUserID, unix)
	return err
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM identity_cache`)
	return err
}
