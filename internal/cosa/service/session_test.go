package service

import (
	"context"
	"testing"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestLogin_PendingSecondFactor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "student", "alice", "password123")

	result, err := env.Sessions.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	require.NotEmpty(t, result.Token)
	require.Equal(t, domain.SessionPendingSecondFactor, result.Session.Phase)
	require.Empty(t, result.Session.Role, "role snapshot happens at promotion, not login")

	require.NotNil(t, result.Challenge)
	require.True(t, result.Challenge.SetupMode)
	require.NotEmpty(t, result.Challenge.Secret)
	require.Contains(t, result.Challenge.ProvisioningURI, "otpauth://totp/")
	require.Contains(t, result.Challenge.ProvisioningURI, "issuer=COSA")

	// The pending window is short; the full TTL is granted at promotion.
	require.Equal(t, env.Clock.Now().Add(DefaultPendingTTL), result.Session.ExpiresAt)
}

func TestLogin_SetupModeRepeatsUntilVerified(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "student", "alice", "password123")

	first, err := env.Sessions.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.True(t, first.Challenge.SetupMode)

	// Abandoning the first login and starting over re-shows the SAME secret,
	// since setup never completed.
	second, err := env.Sessions.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.True(t, second.Challenge.SetupMode)
	require.Equal(t, first.Challenge.Secret, second.Challenge.Secret)

	// Completing setup ends setup mode for good.
	_, err = env.Sessions.VerifySecondFactor(ctx, second.Token, env.totpCode(t, second.Challenge.Secret))
	require.NoError(t, err)

	third, err := env.Sessions.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	require.False(t, third.Challenge.SetupMode)
	require.Empty(t, third.Challenge.Secret)
	require.Empty(t, third.Challenge.ProvisioningURI)
}

func TestLogin_NoSecondFactor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "coordinator", "carol", "password123")

	// Flip the requirement off directly at the store level.
	require.NoError(t, env.Store.Users().SetTwoFactorEnabled(ctx, user.ID, false))

	result, err := env.Sessions.Login(ctx, "carol", "password123")
	require.NoError(t, err)
	require.Nil(t, result.Challenge)
	require.Equal(t, domain.SessionAuthenticated, result.Session.Phase)
	require.Equal(t, domain.RoleCoordinator, result.Session.Role)
	require.Equal(t, env.Clock.Now().Add(DefaultSessionTTL), result.Session.ExpiresAt)

	_, _, err = env.Gate.Authorize(ctx, result.Token)
	require.NoError(t, err)
}

func TestVerifySecondFactor(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "student", "alice", "password123")

	t.Run("correct code promotes and completes setup", func(t *testing.T) {
		result, err := env.Sessions.Login(ctx, "alice", "password123")
		require.NoError(t, err)

		session, err := env.Sessions.VerifySecondFactor(ctx, result.Token, env.totpCode(t, result.Challenge.Secret))
		require.NoError(t, err)
		require.Equal(t, domain.SessionAuthenticated, session.Phase)
		require.Equal(t, domain.RoleStudent, session.Role)
		require.Equal(t, env.Clock.Now().Add(DefaultSessionTTL), session.ExpiresAt)

		user, err := env.Store.Users().GetUserByLogin(ctx, "alice")
		require.NoError(t, err)
		require.True(t, user.TwoFactorSetupDone)
	})

	t.Run("wrong code is rejected", func(t *testing.T) {
		result, err := env.Sessions.Login(ctx, "alice", "password123")
		require.NoError(t, err)

		_, err = env.Sessions.VerifySecondFactor(ctx, result.Token, "000000")
		require.ErrorIs(t, err, ErrInvalidOrExpiredCode)
	})

	t.Run("stale code outside the skew window is rejected", func(t *testing.T) {
		result, err := env.Sessions.Login(ctx, "alice", "password123")
		require.NoError(t, err)

		user, err := env.Store.Users().GetUserByLogin(ctx, "alice")
		require.NoError(t, err)
		staleCode := env.totpCode(t, *user.TwoFactorSecret)

		// Two full periods later the code is out of the +-1 skew window.
		env.Clock.Advance(90 * time.Second)

		_, err = env.Sessions.VerifySecondFactor(ctx, result.Token, staleCode)
		require.ErrorIs(t, err, ErrInvalidOrExpiredCode)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := env.Sessions.VerifySecondFactor(ctx, "no-such-token", "123456")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("expired pending session", func(t *testing.T) {
		result, err := env.Sessions.Login(ctx, "alice", "password123")
		require.NoError(t, err)

		env.Clock.Advance(DefaultPendingTTL + time.Second)

		user, err := env.Store.Users().GetUserByLogin(ctx, "alice")
		require.NoError(t, err)

		_, err = env.Sessions.VerifySecondFactor(ctx, result.Token, env.totpCode(t, *user.TwoFactorSecret))
		require.ErrorIs(t, err, ErrSessionExpired)

		// The expired session is destroyed, not left around.
		_, err = env.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(result.Token))
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestVerifySecondFactor_AttemptBudget(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "student", "alice", "password123")

	result, err := env.Sessions.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	for i := 1; i < MaxSecondFactorAttempts; i++ {
		_, err := env.Sessions.VerifySecondFactor(ctx, result.Token, "000000")
		require.ErrorIs(t, err, ErrInvalidOrExpiredCode, "attempt %d", i)
	}

	// The final failure burns the session.
	_, err = env.Sessions.VerifySecondFactor(ctx, result.Token, "000000")
	require.ErrorIs(t, err, ErrTooManyAttempts)

	// Even the correct code is useless now; the session is gone.
	user, err := env.Store.Users().GetUserByLogin(ctx, "alice")
	require.NoError(t, err)
	_, err = env.Sessions.VerifySecondFactor(ctx, result.Token, env.totpCode(t, *user.TwoFactorSecret))
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestVerifySecondFactor_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "student", "alice", "password123")

	result, err := env.Sessions.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	code := env.totpCode(t, result.Challenge.Secret)

	first, err := env.Sessions.VerifySecondFactor(ctx, result.Token, code)
	require.NoError(t, err)

	// A duplicate verify against an already-authenticated session reports
	// success without touching the session.
	second, err := env.Sessions.VerifySecondFactor(ctx, result.Token, code)
	require.NoError(t, err)
	require.Equal(t, first.Phase, second.Phase)
	require.Equal(t, first.Role, second.Role)
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.registerUser(t, "student", "alice", "password123")

	t.Run("works for authenticated sessions", func(t *testing.T) {
		token := env.loginAndVerify(t, "alice", "password123")
		require.NoError(t, env.Sessions.Logout(ctx, token))

		_, _, err := env.Gate.Authorize(ctx, token)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("works for pending sessions", func(t *testing.T) {
		result, err := env.Sessions.Login(ctx, "alice", "password123")
		require.NoError(t, err)
		require.NoError(t, env.Sessions.Logout(ctx, result.Token))

		_, err = env.Sessions.VerifySecondFactor(ctx, result.Token, "123456")
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	t.Run("never fails on unknown tokens", func(t *testing.T) {
		require.NoError(t, env.Sessions.Logout(ctx, "token-that-never-existed"))
	})
}
