package domain

import "time"

// SessionPhase is the authentication-progress state of a login attempt.
// Sessions only move forward: pending_second_factor -> authenticated. The
// only way back is deletion (logout, expiry, or deactivation).
type SessionPhase string

const (
	SessionPendingSecondFactor SessionPhase = "pending_second_factor"
	SessionAuthenticated       SessionPhase = "authenticated"
)

// Session is a server-side session record. The bearer token handed to the
// client is opaque; only its SHA-256 fingerprint is stored here.
type Session struct {
	ID        string
	TokenHash string
	UserID    string
	Role      Role // snapshot taken at promotion, authorizes for the session lifetime
	Phase     SessionPhase
	Attempts  int // failed second-factor attempts while pending
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the session is past its time-to-live at t.
func (s Session) Expired(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}
