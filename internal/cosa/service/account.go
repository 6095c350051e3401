package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/cryptox"
	"github.com/cosahq/cosa/pkg/idx"
)

// AccountService owns the credential store: registration, password
// verification, and administrative changes to role and active status.
type AccountService struct {
	Store store.Store
}

// RegisterParams is the validated input for creating an account.
type RegisterParams struct {
	Role      string
	Username  string
	Email     string
	Name      string
	StudentID string // students only, ignored for other roles
	Password  string
}

// Register creates a new account with a hashed password. New accounts start
// active with the two-factor requirement enabled but not yet set up.
func (s *AccountService) Register(ctx context.Context, p RegisterParams) (domain.User, error) {
	role, ok := domain.ParseRole(p.Role)
	if !ok {
		return domain.User{}, ErrInvalidRole
	}

	username := strings.TrimSpace(p.Username)
	email := strings.TrimSpace(p.Email)
	if username == "" || email == "" || p.Password == "" {
		return domain.User{}, fmt.Errorf("%w: username, email and password are required", ErrInvalidRequest)
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:               idx.New().String(),
		Role:             role,
		Username:         username,
		Email:            email,
		Name:             strings.TrimSpace(p.Name),
		PasswordHash:     hash,
		Active:           true,
		TwoFactorEnabled: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if role == domain.RoleStudent {
		user.StudentID = strings.TrimSpace(p.StudentID)
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrConflict
		}
		return domain.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// VerifyCredential checks a login (username or email) and password pair.
// Unknown logins and wrong passwords return the same ErrInvalidCredentials.
// Deactivated accounts fail with ErrAccountDeactivated only AFTER the
// password checks out, so the deactivation message never leaks to guessers.
func (s *AccountService) VerifyCredential(ctx context.Context, login, password string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn comparable time so unknown logins aren't distinguishable
			// from wrong passwords.
			_ = cryptox.VerifyPassword(password, dummyHash())
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("failed to verify password: %w", err)
	}

	if !user.Active {
		return domain.User{}, ErrAccountDeactivated
	}

	return user, nil
}

var (
	dummyOnce sync.Once
	dummy     string
)

// dummyHash returns a syntactically valid Argon2id hash verified against
// when the login does not resolve, keeping timing uniform. Built lazily so
// the pepper path is configured before the first hash.
func dummyHash() string {
	dummyOnce.Do(func() {
		h, err := cryptox.HashPassword("timing-equalizer")
		if err != nil {
			// Hashing only fails if the entropy source is broken, in which
			// case nothing else in this service works either.
			panic(err)
		}
		dummy = h
	})
	return dummy
}

// GetUser returns an account by id.
func (s *AccountService) GetUser(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrNotFound
		}
		return domain.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers returns every account for the admin view.
func (s *AccountService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.Store.Users().ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetActive flips an account's active flag. Deactivation destroys every
// session the user holds in the same transaction, so the account is locked
// out the moment the flag lands.
func (s *AccountService) SetActive(ctx context.Context, userID string, active bool) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().SetActive(ctx, userID, active); err != nil {
			return err
		}
		if !active {
			if err := tx.Sessions().DeleteUserSessions(ctx, userID); err != nil {
				return fmt.Errorf("failed to purge sessions: %w", err)
			}
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to set active flag: %w", err)
	}
	return nil
}

// SetRole replaces an account's role. Existing authenticated sessions keep
// their old role snapshot until they end; new logins pick up the new role.
func (s *AccountService) SetRole(ctx context.Context, userID string, role string) error {
	parsed, ok := domain.ParseRole(role)
	if !ok {
		return ErrInvalidRole
	}

	if err := s.Store.Users().SetRole(ctx, userID, parsed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set role: %w", err)
	}
	return nil
}

// DeleteUser removes an account. Sessions and owned records cascade.
func (s *AccountService) DeleteUser(ctx context.Context, userID string) error {
	if err := s.Store.Users().DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
