package cosa_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
)

// TestRegisterValidation covers the account creation rules.
func TestRegisterValidation(t *testing.T) {
	client := setupServer(t)

	user := registerUser(t, client, "student")
	require.Equal(t, "student", user.Role)
	require.True(t, user.Active)
	require.True(t, user.TwoFactorEnabled)
	require.False(t, user.TwoFactorSetupDone)
	require.NotEmpty(t, user.StudentID)

	// Duplicate username
	_, err := client.Register(t.Context(), cosasdk.RegisterRequest{
		Role:     "student",
		Username: user.Username,
		Email:    "other@example.edu",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusConflict, cosasdk.ErrorCodeConflict)

	// Duplicate email
	_, err = client.Register(t.Context(), cosasdk.RegisterRequest{
		Role:     "student",
		Username: "someoneelse",
		Email:    user.Email,
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusConflict, cosasdk.ErrorCodeConflict)

	// Unknown role
	_, err = client.Register(t.Context(), cosasdk.RegisterRequest{
		Role:     "superuser",
		Username: "eve",
		Email:    "eve@example.edu",
		Password: testPassword,
	})
	requireAPIError(t, err, http.StatusBadRequest, cosasdk.ErrorCodeInvalidRole)
}

// TestLoginVerifyAndMe walks the happy path: register, two-step login,
// then an authenticated call.
func TestLoginVerifyAndMe(t *testing.T) {
	client := setupServer(t)

	user := registerUser(t, client, "coordinator")
	session, _ := authenticate(t, client, user.Username)

	me, err := session.Me(t.Context())
	require.NoError(t, err)
	require.Equal(t, user.ID, me.ID)
	require.Equal(t, user.Username, me.Username)
	require.True(t, me.TwoFactorSetupDone, "first verification should complete enrollment")
}

// TestLoginByEmail checks the email address works as the login identifier.
func TestLoginByEmail(t *testing.T) {
	client := setupServer(t)

	user := registerUser(t, client, "student")

	_, loginResp, err := client.Login(t.Context(), user.Email, testPassword)
	require.NoError(t, err)
	require.Equal(t, "pending_second_factor", loginResp.Phase)
}

// TestLoginRejections checks that unknown accounts and wrong passwords
// are indistinguishable, and that deactivation is reported only for a
// correct password.
func TestLoginRejections(t *testing.T) {
	client := setupServer(t)
	user := registerUser(t, client, "student")

	_, _, err := client.Login(t.Context(), "no-such-user", testPassword)
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidCredentials)

	_, _, err = client.Login(t.Context(), user.Username, "WrongPassword1!")
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidCredentials)

	// Deactivate via an admin, then try both password variants.
	_, adminSession := newUser(t, client, "admin")
	require.NoError(t, adminSession.SetUserActive(t.Context(), user.ID, false))

	_, _, err = client.Login(t.Context(), user.Username, "WrongPassword1!")
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidCredentials)

	_, _, err = client.Login(t.Context(), user.Username, testPassword)
	requireAPIError(t, err, http.StatusForbidden, cosasdk.ErrorCodeAccountDeactivated)
}

// TestSecondFactorEnrollment checks the setup-mode challenge contents and
// that enrollment repeats with the same secret until a code verifies.
func TestSecondFactorEnrollment(t *testing.T) {
	client := setupServer(t)
	user := registerUser(t, client, "employer")

	_, first, err := client.Login(t.Context(), user.Username, testPassword)
	require.NoError(t, err)
	require.NotNil(t, first.Challenge)
	require.True(t, first.Challenge.SetupMode)
	require.NotEmpty(t, first.Challenge.Secret)
	require.Contains(t, first.Challenge.ProvisioningURI, "otpauth://totp/")
	require.Contains(t, first.Challenge.ProvisioningURI, first.Challenge.Secret)
	require.True(t, strings.HasPrefix(first.Challenge.QRCode, "data:image/png;base64,"))

	// A second login before any verification repeats the same secret.
	_, second, err := client.Login(t.Context(), user.Username, testPassword)
	require.NoError(t, err)
	require.True(t, second.Challenge.SetupMode)
	require.Equal(t, first.Challenge.Secret, second.Challenge.Secret)

	// Complete enrollment; subsequent challenges carry no material.
	authenticateWithSecret(t, client, user.Username, first.Challenge.Secret)

	_, third, err := client.Login(t.Context(), user.Username, testPassword)
	require.NoError(t, err)
	require.NotNil(t, third.Challenge)
	require.False(t, third.Challenge.SetupMode)
	require.Empty(t, third.Challenge.Secret)
	require.Empty(t, third.Challenge.QRCode)
}

// TestVerifyRejections covers wrong codes, bad tokens and the attempt
// budget.
func TestVerifyRejections(t *testing.T) {
	client := setupServer(t)
	user := registerUser(t, client, "student")

	session, loginResp, err := client.Login(t.Context(), user.Username, testPassword)
	require.NoError(t, err)
	secret := loginResp.Challenge.Secret

	// Wrong codes burn attempts.
	for range 4 {
		_, err = session.VerifySecondFactor(t.Context(), "000000")
		requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidCode)
	}

	// The fifth failure destroys the session.
	_, err = session.VerifySecondFactor(t.Context(), "000000")
	requireAPIError(t, err, http.StatusTooManyRequests, cosasdk.ErrorCodeTooManyAttempts)

	// Even a correct code is useless now: the token no longer exists.
	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	_, err = session.VerifySecondFactor(t.Context(), code)
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidToken)

	// Garbage bearer token.
	bogus := client.NewSessionFromToken("not-a-real-token")
	_, err = bogus.VerifySecondFactor(t.Context(), code)
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidToken)
}

// TestLogout checks logout is unconditional and kills the session.
func TestLogout(t *testing.T) {
	client := setupServer(t)
	user := registerUser(t, client, "student")
	session, _ := authenticate(t, client, user.Username)

	require.NoError(t, session.Logout(t.Context()))

	_, err := session.Me(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidToken)

	// Logging out an unknown token still succeeds.
	bogus := client.NewSessionFromToken("nonsense")
	require.NoError(t, bogus.Logout(t.Context()))

	// Pending sessions can be abandoned the same way.
	pending, _, err := client.Login(t.Context(), user.Username, testPassword)
	require.NoError(t, err)
	require.NoError(t, pending.Logout(t.Context()))
}

// TestPendingTokenHasNoAuthority ensures a pending session cannot reach
// authenticated endpoints.
func TestPendingTokenHasNoAuthority(t *testing.T) {
	client := setupServer(t)
	user := registerUser(t, client, "student")

	pending, _, err := client.Login(t.Context(), user.Username, testPassword)
	require.NoError(t, err)

	_, err = pending.Me(t.Context())
	requireAPIError(t, err, http.StatusUnauthorized, cosasdk.ErrorCodeInvalidToken)
}
