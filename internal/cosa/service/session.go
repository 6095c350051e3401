package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/cryptox"
	"github.com/cosahq/cosa/pkg/idx"
)

// Session lifetime defaults. The pending window is deliberately short: it
// only needs to cover the user reaching for their phone.
const (
	DefaultPendingTTL = 5 * time.Minute
	DefaultSessionTTL = 12 * time.Hour

	// MaxSecondFactorAttempts is the failed-code budget for one pending
	// session. Exhausting it destroys the session.
	MaxSecondFactorAttempts = 5
)

// SessionService orchestrates the login state machine. Sessions move one way
// only: pending_second_factor -> authenticated -> gone. There is no path
// back to an earlier phase.
type SessionService struct {
	Store     store.Store
	Accounts  *AccountService
	TwoFactor *TwoFactorService

	PendingTTL time.Duration
	SessionTTL time.Duration

	// Now is the time source for expiry decisions; tests override it.
	Now func() time.Time
}

// LoginResult is returned from a successful first authentication step. The
// Token is the opaque bearer credential; it is shown once and never stored
// server-side in recoverable form.
type LoginResult struct {
	Token     string
	Session   domain.Session
	Challenge *domain.TwoFactorChallenge // nil when no second factor is required
}

func (s *SessionService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *SessionService) pendingTTL() time.Duration {
	if s.PendingTTL > 0 {
		return s.PendingTTL
	}
	return DefaultPendingTTL
}

func (s *SessionService) sessionTTL() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return DefaultSessionTTL
}

// Login verifies the credential pair and opens a session. Accounts with the
// second factor enabled get a pending session plus a challenge; accounts
// without it are authenticated immediately with their role snapshotted.
func (s *SessionService) Login(ctx context.Context, login, password string) (LoginResult, error) {
	user, err := s.Accounts.VerifyCredential(ctx, login, password)
	if err != nil {
		return LoginResult{}, err
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	now := s.now()
	session := domain.Session{
		ID:        idx.New().String(),
		TokenHash: cryptox.FingerprintToken(token),
		UserID:    user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	var challenge *domain.TwoFactorChallenge
	if user.TwoFactorEnabled {
		c, err := s.TwoFactor.BeginChallenge(ctx, user)
		if err != nil {
			return LoginResult{}, err
		}
		challenge = &c

		session.Phase = domain.SessionPendingSecondFactor
		session.ExpiresAt = now.Add(s.pendingTTL())
	} else {
		session.Phase = domain.SessionAuthenticated
		session.Role = user.Role // snapshot authorizes for the session lifetime
		session.ExpiresAt = now.Add(s.sessionTTL())
	}

	if err := s.Store.Sessions().CreateSession(ctx, session); err != nil {
		return LoginResult{}, fmt.Errorf("failed to create session: %w", err)
	}

	return LoginResult{Token: token, Session: session, Challenge: challenge}, nil
}

// VerifySecondFactor completes the login for a pending session. A correct
// code promotes the session to authenticated, snapshots the user's current
// role, extends the expiry, and (on first ever success) marks two-factor
// setup as completed. Wrong codes burn an attempt; the budget is enforced
// by destroying the session.
func (s *SessionService) VerifySecondFactor(ctx context.Context, token, code string) (domain.Session, error) {
	tokenHash := cryptox.FingerprintToken(token)

	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, ErrUnauthenticated
		}
		return domain.Session{}, fmt.Errorf("failed to look up session: %w", err)
	}

	now := s.now()
	if session.Expired(now) {
		_ = s.Store.Sessions().DeleteSession(ctx, tokenHash)
		return domain.Session{}, ErrSessionExpired
	}

	if session.Phase == domain.SessionAuthenticated {
		// Already promoted (e.g. a duplicate verify racing in); the session
		// can only have moved forward, so report success idempotently.
		return session, nil
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		return domain.Session{}, fmt.Errorf("failed to resolve session user: %w", err)
	}
	if !user.Active {
		_ = s.Store.Sessions().DeleteUserSessions(ctx, user.ID)
		return domain.Session{}, ErrAccountDeactivated
	}

	if err := s.TwoFactor.VerifyCode(user, code); err != nil {
		updated, incErr := s.Store.Sessions().IncrementSessionAttempts(ctx, tokenHash)
		if incErr != nil {
			return domain.Session{}, fmt.Errorf("failed to record attempt: %w", incErr)
		}
		if updated.Attempts >= MaxSecondFactorAttempts {
			_ = s.Store.Sessions().DeleteSession(ctx, tokenHash)
			return domain.Session{}, ErrTooManyAttempts
		}
		return domain.Session{}, err
	}

	expiresAt := now.Add(s.sessionTTL())
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if !user.TwoFactorSetupDone {
			if err := tx.Users().MarkTwoFactorSetupDone(ctx, user.ID); err != nil {
				return fmt.Errorf("failed to complete two-factor setup: %w", err)
			}
		}
		if err := tx.Sessions().PromoteSession(ctx, tokenHash, user.Role, expiresAt); err != nil {
			return fmt.Errorf("failed to promote session: %w", err)
		}
		return nil
	})
	if err != nil {
		// The promote is conditional on the pending phase; losing the race
		// to a parallel verify is fine, everything else is not.
		if errors.Is(err, store.ErrNotFound) {
			promoted, getErr := s.Store.Sessions().GetSessionByTokenHash(ctx, tokenHash)
			if getErr == nil && promoted.Phase == domain.SessionAuthenticated {
				return promoted, nil
			}
			return domain.Session{}, ErrUnauthenticated
		}
		return domain.Session{}, err
	}

	session.Phase = domain.SessionAuthenticated
	session.Role = user.Role
	session.ExpiresAt = expiresAt
	session.UpdatedAt = now
	return session, nil
}

// Logout destroys the session for the given token. It works in any phase and
// never fails on an unknown token, so a client can always clear its state.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	if err := s.Store.Sessions().DeleteSession(ctx, cryptox.FingerprintToken(token)); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
