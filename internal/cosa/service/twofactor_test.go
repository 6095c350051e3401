package service

import (
	"context"
	"encoding/base32"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBeginChallenge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	t.Run("generates and persists a secret on first challenge", func(t *testing.T) {
		user := env.registerUser(t, "student", "alice", "password123")

		challenge, err := env.TwoFactor.BeginChallenge(ctx, user)
		require.NoError(t, err)
		require.True(t, challenge.SetupMode)
		require.NotEmpty(t, challenge.Secret)

		// Base32, unpadded, 160 bits.
		decoded, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(challenge.Secret)
		require.NoError(t, err)
		require.Len(t, decoded, 20)

		stored, err := env.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.TwoFactorSecret)
		require.Equal(t, challenge.Secret, *stored.TwoFactorSecret)
	})

	t.Run("reuses the stored secret until setup completes", func(t *testing.T) {
		user := env.registerUser(t, "student", "bob", "password123")

		first, err := env.TwoFactor.BeginChallenge(ctx, user)
		require.NoError(t, err)

		reloaded, err := env.Store.Users().GetUserByID(ctx, user.ID)
		require.NoError(t, err)

		second, err := env.TwoFactor.BeginChallenge(ctx, reloaded)
		require.NoError(t, err)
		require.Equal(t, first.Secret, second.Secret)
	})

	t.Run("bare challenge after setup", func(t *testing.T) {
		user := env.registerUser(t, "student", "carol", "password123")
		user.TwoFactorSetupDone = true

		challenge, err := env.TwoFactor.BeginChallenge(ctx, user)
		require.NoError(t, err)
		require.False(t, challenge.SetupMode)
		require.Empty(t, challenge.Secret)
		require.Empty(t, challenge.ProvisioningURI)
	})
}

func TestProvisioningURI(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "student", "dave", "password123")

	challenge, err := env.TwoFactor.BeginChallenge(context.Background(), user)
	require.NoError(t, err)

	u, err := url.Parse(challenge.ProvisioningURI)
	require.NoError(t, err)
	require.Equal(t, "otpauth", u.Scheme)
	require.Equal(t, "totp", u.Host)
	require.True(t, strings.HasSuffix(u.Path, "COSA:dave"))

	q := u.Query()
	require.Equal(t, challenge.Secret, q.Get("secret"))
	require.Equal(t, "COSA", q.Get("issuer"))
	require.Equal(t, "SHA1", q.Get("algorithm"))
	require.Equal(t, "6", q.Get("digits"))
	require.Equal(t, "30", q.Get("period"))
}

func TestVerifyCode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "student", "erin", "password123")

	challenge, err := env.TwoFactor.BeginChallenge(ctx, user)
	require.NoError(t, err)
	user, err = env.Store.Users().GetUserByID(ctx, user.ID)
	require.NoError(t, err)

	t.Run("accepts the current code", func(t *testing.T) {
		require.NoError(t, env.TwoFactor.VerifyCode(user, env.totpCode(t, challenge.Secret)))
	})

	t.Run("accepts one period of drift either way", func(t *testing.T) {
		code := env.totpCode(t, challenge.Secret)

		env.Clock.Advance(30 * time.Second)
		require.NoError(t, env.TwoFactor.VerifyCode(user, code))

		env.Clock.Advance(-60 * time.Second)
		require.NoError(t, env.TwoFactor.VerifyCode(user, code))

		env.Clock.Advance(30 * time.Second) // back to start
	})

	t.Run("rejects a code two periods old", func(t *testing.T) {
		code := env.totpCode(t, challenge.Secret)

		env.Clock.Advance(90 * time.Second)
		defer env.Clock.Advance(-90 * time.Second)

		require.ErrorIs(t, env.TwoFactor.VerifyCode(user, code), ErrInvalidOrExpiredCode)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		require.ErrorIs(t, env.TwoFactor.VerifyCode(user, "000000"), ErrInvalidOrExpiredCode)
		require.ErrorIs(t, env.TwoFactor.VerifyCode(user, "not-a-code"), ErrInvalidOrExpiredCode)
		require.ErrorIs(t, env.TwoFactor.VerifyCode(user, ""), ErrInvalidOrExpiredCode)
	})

	t.Run("rejects when no secret is on file", func(t *testing.T) {
		bare := env.registerUser(t, "student", "frank", "password123")
		require.ErrorIs(t, env.TwoFactor.VerifyCode(bare, "123456"), ErrInvalidOrExpiredCode)
	})
}
