package store

import (
	"context"
	"errors"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to stop callers from accidentally nesting transactions.
type Store interface {
	Users() Users
	Sessions() Sessions
	Jobs() Jobs
	Reports() Reports
	Applications() Applications

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos plus Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// CreateUser inserts a new user (id is provided by the app via ULID).
	// Returns ErrAlreadyExists when username or email is already taken.
	CreateUser(ctx context.Context, u domain.User) error

	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByLogin resolves a user by username OR email (exact match).
	GetUserByLogin(ctx context.Context, usernameOrEmail string) (domain.User, error)

	// ListUsers returns all users ordered by creation (admin view).
	ListUsers(ctx context.Context) ([]domain.User, error)

	// SetActive flips the active flag and bumps updated_at.
	SetActive(ctx context.Context, userID string, active bool) error

	// SetRole replaces the role and bumps updated_at.
	SetRole(ctx context.Context, userID string, role domain.Role) error

	// UpdateTwoFactorSecret sets the TOTP secret for a user.
	UpdateTwoFactorSecret(ctx context.Context, userID string, secret string) error

	// SetTwoFactorEnabled flips whether the user must pass a second factor.
	SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error

	// MarkTwoFactorSetupDone flips the setup-completed flag permanently.
	MarkTwoFactorSetupDone(ctx context.Context, userID string) error

	// DeleteUser cascades to sessions and owned records (per schema).
	DeleteUser(ctx context.Context, userID string) error
}

type Sessions interface {
	// CreateSession stores a new session record (token stored as fingerprint).
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByTokenHash returns the session for a token fingerprint.
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error)

	// PromoteSession moves a pending session to the authenticated phase,
	// recording the role snapshot and the new expiry. The update is
	// conditional on phase = pending so a racing request can never regress
	// an authenticated session; ErrNotFound is returned when no pending
	// session matched.
	PromoteSession(ctx context.Context, tokenHash string, role domain.Role, expiresAt time.Time) error

	// IncrementSessionAttempts bumps the failed second-factor counter and
	// returns the updated session.
	IncrementSessionAttempts(ctx context.Context, tokenHash string) (domain.Session, error)

	// DeleteSession removes a session by token fingerprint. Deleting an
	// absent session is not an error.
	DeleteSession(ctx context.Context, tokenHash string) error

	// DeleteUserSessions removes every session belonging to a user
	// (deactivation fail-closed path).
	DeleteUserSessions(ctx context.Context, userID string) error

	// DeleteExpiredSessions is housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}

type Jobs interface {
	CreateJobPosting(ctx context.Context, j domain.JobPosting) error
	ListJobPostings(ctx context.Context) ([]domain.JobPosting, error)
	ListJobPostingsByEmployer(ctx context.Context, employerID string) ([]domain.JobPosting, error)
}

type Reports interface {
	CreateReport(ctx context.Context, r domain.Report) error
	ListReports(ctx context.Context) ([]domain.Report, error)
	ListReportsByStudent(ctx context.Context, studentID string) ([]domain.Report, error)
}

// ApplicationFilter narrows ListApplications. Zero-value fields match
// everything; set fields combine with AND.
type ApplicationFilter struct {
	// Name matches as a case-insensitive substring of the full name.
	Name string
	// LinkedIn matches as a case-insensitive substring of the LinkedIn field.
	LinkedIn string
	// StudentNumber matches exactly.
	StudentNumber string
}

type Applications interface {
	// CreateApplication inserts a new co-op application. Returns
	// ErrAlreadyExists when the student already applied or the student
	// number is taken.
	CreateApplication(ctx context.Context, a domain.CoopApplication) error

	GetApplicationByID(ctx context.Context, id string) (domain.CoopApplication, error)
	GetApplicationByStudent(ctx context.Context, studentID string) (domain.CoopApplication, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]domain.CoopApplication, error)

	// UpdateApplicationStatus replaces the review status and bumps updated_at.
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
}
