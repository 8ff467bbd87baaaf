package identity

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jonny-tran/lms-math-exam/pkg/lmssdk"
)

// Defaults applied when auto-provisioning a missing profile.
const (
	defaultTeacherBio        = "Default Bio"
	defaultTeacherDepartment = "General"
	defaultStudentMajor      = "General"
	fallbackTeacherName      = "Teacher"
	fallbackStudentName      = "Student"
)

// API is the slice of the SDK client the resolver depends on.
// *lmssdk.Client satisfies it.
type API interface {
	Me(ctx context.Context) (*lmssdk.MeResponse, error)
	ListTeachers(ctx context.Context) ([]lmssdk.Teacher, error)
	CreateTeacherProfile(ctx context.Context, req lmssdk.CreateTeacherProfileRequest) (*lmssdk.Teacher, error)
	GetStudentByUserID(ctx context.Context, userID int64) (*lmssdk.Student, error)
	CreateStudentProfile(ctx context.Context, req lmssdk.CreateStudentRequest) (*lmssdk.Student, error)
}

// State of a Resolver.
type State int

const (
	StateUnresolved State = iota
	StateResolving
	StateResolved
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUnresolved:
		return "unresolved"
	case StateResolving:
		return "resolving"
	case StateResolved:
		return "resolved"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Resolver produces the current session's domain profile id, hiding both the
// cache and the auto-provisioning of first-time users. Concurrent Resolve
// calls share a single resolution pass.
//
// Auto-provisioning is idempotent in intent only: two processes racing on
// the same fresh account may both issue a create call. The backend owns
// uniqueness; the resolver does not guard that race.
type Resolver struct {
	api    API
	cache  Store
	role   Role
	logger *slog.Logger

	sf singleflight.Group

	mu      sync.RWMutex
	state   State
	current Identity
}

// NewResolver creates a resolver for the given role. A nil logger falls back
// to slog.Default.
func NewResolver(api API, cache Store, role Role, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{
		api:    api,
		cache:  cache,
		role:   role,
		logger: logger,
	}
}

// State returns the resolver's current state.
func (r *Resolver) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state
}

// Resolve returns the session's domain identity, consulting the cache first.
// A cached entry is honored only when its owner user id matches the live
// session's user id; any mismatch forces full re-resolution.
func (r *Resolver) Resolve(ctx context.Context) (Identity, error) {
	return r.resolve(ctx, false)
}

// Refresh forces a full resolution pass, ignoring the cache. Used after
// external session changes such as a logout/login swap.
func (r *Resolver) Refresh(ctx context.Context) (Identity, error) {
	return r.resolve(ctx, true)
}

func (r *Resolver) resolve(ctx context.Context, bypassCache bool) (Identity, error) {
	key := "resolve"
	if bypassCache {
		key = "refresh"
	}

	// The pass outcome is shared by every waiter; one canceled caller must
	// not fail it for the rest.
	passCtx := context.WithoutCancel(ctx)

	v, err, _ := r.sf.Do(key, func() (any, error) {
		r.setState(StateResolving)

		id, err := r.resolveOnce(passCtx, bypassCache)
		if err != nil {
			r.setState(StateFailed)
			return Identity{}, err
		}

		r.mu.Lock()
		r.state = StateResolved
		r.current = id
		r.mu.Unlock()
		return id, nil
	})
	if err != nil {
		return Identity{}, err
	}
	return v.(Identity), nil
}

func (r *Resolver) resolveOnce(ctx context.Context, bypassCache bool) (Identity, error) {
	me, err := r.api.Me(ctx)
	if err != nil {
		return Identity{}, fmt.Errorf("identity: fetch session: %w", err)
	}

	userID, err := strconv.ParseInt(me.UserID, 10, 64)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %q", ErrInvalidUserID, me.UserID)
	}

	if !bypassCache {
		if cached, err := r.cache.Get(ctx, r.role); err == nil && cached.OwnerUserID == userID {
			return cached, nil
		}
	}

	var profileID int64
	switch r.role {
	case RoleStudent:
		profileID, err = r.resolveStudent(ctx, userID, me.Username)
	default:
		profileID, err = r.resolveTeacher(ctx, userID, me.Username)
	}
	if err != nil {
		return Identity{}, err
	}

	id := Identity{
		Role:        r.role,
		ProfileID:   profileID,
		OwnerUserID: userID,
	}
	if err := r.cache.Put(ctx, id); err != nil {
		// A dead cache should not fail resolution; next call re-resolves.
		r.logger.Warn("identity cache write failed", "role", r.role, "err", err)
	}
	return id, nil
}

// resolveTeacher finds the teacher profile owned by userID, creating one
// with defaults when the backend has none.
func (r *Resolver) resolveTeacher(ctx context.Context, userID int64, username string) (int64, error) {
	teachers, err := r.api.ListTeachers(ctx)
	if err != nil {
		return 0, fmt.Errorf("identity: list teachers: %w", err)
	}

	for _, t := range teachers {
		if t.UserID == userID {
			return t.TeacherID, nil
		}
	}

	name := username
	if name == "" {
		name = fallbackTeacherName
	}
	created, err := r.api.CreateTeacherProfile(ctx, lmssdk.CreateTeacherProfileRequest{
		UserID:     userID,
		Name:       name,
		Bio:        defaultTeacherBio,
		Department: defaultTeacherDepartment,
		HireDate:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return 0, fmt.Errorf("identity: provision teacher profile: %w", err)
	}

	r.logger.Info("teacher profile auto-provisioned",
		"user_id", userID, "teacher_id", created.TeacherID)
	return created.TeacherID, nil
}

// resolveStudent looks up the student profile by user id, creating one with
// defaults on a not-found response. Other lookup failures propagate.
func (r *Resolver) resolveStudent(ctx context.Context, userID int64, username string) (int64, error) {
	student, err := r.api.GetStudentByUserID(ctx, userID)
	if err == nil {
		return student.StudentID, nil
	}
	if !lmssdk.IsNotFound(err) {
		return 0, fmt.Errorf("identity: lookup student profile: %w", err)
	}

	name := username
	if name == "" {
		name = fallbackStudentName
	}
	created, err := r.api.CreateStudentProfile(ctx, lmssdk.CreateStudentRequest{
		UserID: userID,
		Name:   name,
		Major:  defaultStudentMajor,
	})
	if err != nil {
		return 0, fmt.Errorf("identity: provision student profile: %w", err)
	}

	r.logger.Info("student profile auto-provisioned",
		"user_id", userID, "student_id", created.StudentID)
	return created.StudentID, nil
}

func (r *Resolver) setState(s State) {
	r.mu.Lock()
	r.state = s
	r.mu.Unlock()
}
