package service

import (
	"context"
	"testing"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("creates active account requiring two-factor setup", func(t *testing.T) {
		user, err := env.Accounts.Register(ctx, RegisterParams{
			Role:      "student",
			Username:  "alice",
			Email:     "alice@example.edu",
			Name:      "Alice",
			StudentID: "100200300",
			Password:  "hunter2hunter2",
		})
		require.NoError(t, err)
		require.Equal(t, domain.RoleStudent, user.Role)
		require.True(t, user.Active)
		require.True(t, user.TwoFactorEnabled)
		require.False(t, user.TwoFactorSetupDone)
		require.Nil(t, user.TwoFactorSecret)
		require.NotEqual(t, "hunter2hunter2", user.PasswordHash)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		_, err := env.Accounts.Register(ctx, RegisterParams{
			Role:     "employer",
			Username: "alice",
			Email:    "other@example.com",
			Password: "password123",
		})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := env.Accounts.Register(ctx, RegisterParams{
			Role:     "employer",
			Username: "someone-else",
			Email:    "alice@example.edu",
			Password: "password123",
		})
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := env.Accounts.Register(ctx, RegisterParams{
			Role:     "superuser",
			Username: "bob",
			Email:    "bob@example.edu",
			Password: "password123",
		})
		require.ErrorIs(t, err, ErrInvalidRole)
	})

	t.Run("ignores student number for non-students", func(t *testing.T) {
		user, err := env.Accounts.Register(ctx, RegisterParams{
			Role:      "coordinator",
			Username:  "carol",
			Email:     "carol@example.edu",
			StudentID: "999999",
			Password:  "password123",
		})
		require.NoError(t, err)
		require.Empty(t, user.StudentID)
	})
}

func TestVerifyCredential(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "student", "alice", "correct-password")

	t.Run("accepts username", func(t *testing.T) {
		user, err := env.Accounts.VerifyCredential(ctx, "alice", "correct-password")
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("accepts email", func(t *testing.T) {
		user, err := env.Accounts.VerifyCredential(ctx, "alice@example.edu", "correct-password")
		require.NoError(t, err)
		require.Equal(t, "alice", user.Username)
	})

	t.Run("unknown login and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := env.Accounts.VerifyCredential(ctx, "nobody", "correct-password")
		_, errWrong := env.Accounts.VerifyCredential(ctx, "alice", "wrong-password")

		require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		require.ErrorIs(t, errWrong, ErrInvalidCredentials)
		require.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("deactivated account is rejected after password check", func(t *testing.T) {
		user, err := env.Accounts.VerifyCredential(ctx, "alice", "correct-password")
		require.NoError(t, err)

		require.NoError(t, env.Accounts.SetActive(ctx, user.ID, false))

		_, err = env.Accounts.VerifyCredential(ctx, "alice", "correct-password")
		require.ErrorIs(t, err, ErrAccountDeactivated)

		// Wrong password on a deactivated account must NOT reveal the
		// deactivation.
		_, err = env.Accounts.VerifyCredential(ctx, "alice", "wrong-password")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestSetRole(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "student", "alice", "password123")

	require.NoError(t, env.Accounts.SetRole(ctx, user.ID, "coordinator"))

	got, err := env.Accounts.GetUser(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, domain.RoleCoordinator, got.Role)

	require.ErrorIs(t, env.Accounts.SetRole(ctx, user.ID, "wizard"), ErrInvalidRole)
	require.ErrorIs(t, env.Accounts.SetRole(ctx, "missing-id", "student"), ErrNotFound)
}

func TestSetActive_PurgesSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "student", "alice", "password123")

	token := env.loginAndVerify(t, "alice", "password123")

	_, _, err := env.Gate.Authorize(ctx, token)
	require.NoError(t, err)

	require.NoError(t, env.Accounts.SetActive(ctx, user.ID, false))

	// The session record is gone, not just marked; the token is dead.
	_, _, err = env.Gate.Authorize(ctx, token)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestDeleteUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "student", "alice", "password123")

	require.NoError(t, env.Accounts.DeleteUser(ctx, user.ID))
	require.ErrorIs(t, env.Accounts.DeleteUser(ctx, user.ID), ErrNotFound)

	_, err := env.Accounts.GetUser(ctx, user.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
