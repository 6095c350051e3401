package service

import "errors"

// Shared sentinel errors. Handlers map these onto HTTP statuses; services
// wrap lower-level failures with context but always surface one of these for
// expected business outcomes.
var (
	// ErrInvalidRequest marks validation failures on caller-supplied input.
	// Wrap it with the specific complaint.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidCredentials covers both unknown-user and wrong-password so a
	// caller cannot probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrAccountDeactivated is returned when the account exists but has been
	// deactivated by an administrator.
	ErrAccountDeactivated = errors.New("account is deactivated")

	// ErrConflict signals a uniqueness violation (username, email, student
	// number, or a duplicate application).
	ErrConflict = errors.New("resource already exists")

	// ErrInvalidRole rejects role values outside the closed enum.
	ErrInvalidRole = errors.New("invalid role")

	// ErrUnauthenticated means no usable session backs the request.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrSessionExpired means the session existed but its TTL has lapsed.
	ErrSessionExpired = errors.New("session expired")

	// ErrInvalidOrExpiredCode is the unified answer for a second-factor code
	// that is wrong, stale, or malformed.
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")

	// ErrTooManyAttempts is returned once a pending session burns through its
	// second-factor attempt budget. The session is destroyed.
	ErrTooManyAttempts = errors.New("too many verification attempts")

	// ErrForbidden means the session is authenticated but its role snapshot
	// does not grant the requested operation.
	ErrForbidden = errors.New("insufficient permissions")

	// ErrInvalidStatus rejects application review outcomes outside the
	// closed enum.
	ErrInvalidStatus = errors.New("invalid application status")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
)
