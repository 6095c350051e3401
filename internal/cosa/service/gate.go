package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/cryptox"
)

// GateService is the access-control check every protected operation runs
// through: a live authenticated session, an account that is still active,
// and a role snapshot matching the operation's allow-list.
type GateService struct {
	Store store.Store

	// Now is the time source for expiry decisions; tests override it.
	Now func() time.Time
}

func (s *GateService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Authorize resolves a bearer token to an authenticated principal. The empty
// roles list means "any authenticated user". The active flag is re-resolved
// from the credential store on every call, and a deactivated account fails
// closed: its sessions are destroyed on the spot.
func (s *GateService) Authorize(ctx context.Context, token string, roles ...domain.Role) (domain.Session, domain.User, error) {
	if token == "" {
		return domain.Session{}, domain.User{}, ErrUnauthenticated
	}

	tokenHash := cryptox.FingerprintToken(token)
	session, err := s.Store.Sessions().GetSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domain.User{}, ErrUnauthenticated
		}
		return domain.Session{}, domain.User{}, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.Expired(s.now()) {
		_ = s.Store.Sessions().DeleteSession(ctx, tokenHash)
		return domain.Session{}, domain.User{}, ErrSessionExpired
	}

	if session.Phase != domain.SessionAuthenticated {
		// A pending session holds no authority at all.
		return domain.Session{}, domain.User{}, ErrUnauthenticated
	}

	user, err := s.Store.Users().GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// An account that vanished is treated like a deactivated one.
			_ = s.Store.Sessions().DeleteSession(ctx, tokenHash)
			return domain.Session{}, domain.User{}, ErrAccountDeactivated
		}
		return domain.Session{}, domain.User{}, fmt.Errorf("failed to resolve session user: %w", err)
	}
	if !user.Active {
		_ = s.Store.Sessions().DeleteUserSessions(ctx, user.ID)
		return domain.Session{}, domain.User{}, ErrAccountDeactivated
	}

	// Authorization decisions use the role snapshotted at promotion, not the
	// user's current role. An admin-initiated role change takes effect on
	// the next login.
	if len(roles) > 0 && !slices.Contains(roles, session.Role) {
		return domain.Session{}, domain.User{}, ErrForbidden
	}

	return session, user, nil
}
