package service

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTP parameters, fixed to what authenticator apps expect by default.
const (
	totpPeriod = 30
	totpDigits = otp.DigitsSix
	totpAlgo   = otp.AlgorithmSHA1
	totpSkew   = 1 // accept one period of clock drift either way

	secretBytes = 20 // 160-bit secret per RFC 4226 recommendation
)

// TwoFactorService owns TOTP enrolment and code verification. A user stays
// in "setup mode" (secret and provisioning URI re-shown at every login)
// until their first successful verification flips the setup-completed flag.
type TwoFactorService struct {
	Store  store.Store
	Issuer string // issuer label shown in authenticator apps

	// Now is the time source for code validation; tests override it.
	Now func() time.Time
}

func (s *TwoFactorService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// BeginChallenge prepares the second-factor step for a user mid-login. If
// the user has never completed setup the challenge carries the shared secret
// and an otpauth:// provisioning URI; a missing secret is generated and
// persisted first. Users past setup get a bare challenge.
func (s *TwoFactorService) BeginChallenge(ctx context.Context, user domain.User) (domain.TwoFactorChallenge, error) {
	if user.TwoFactorSetupDone {
		return domain.TwoFactorChallenge{}, nil
	}

	secret := ""
	if user.TwoFactorSecret != nil {
		secret = *user.TwoFactorSecret
	}
	if secret == "" {
		generated, err := newTwoFactorSecret()
		if err != nil {
			return domain.TwoFactorChallenge{}, err
		}
		if err := s.Store.Users().UpdateTwoFactorSecret(ctx, user.ID, generated); err != nil {
			return domain.TwoFactorChallenge{}, fmt.Errorf("failed to store two-factor secret: %w", err)
		}
		secret = generated
	}

	return domain.TwoFactorChallenge{
		SetupMode:       true,
		Secret:          secret,
		ProvisioningURI: s.provisioningURI(user.Username, secret),
	}, nil
}

// VerifyCode checks a six-digit TOTP code against the user's secret,
// tolerating one period of clock skew. Users with no secret on file cannot
// pass verification.
func (s *TwoFactorService) VerifyCode(user domain.User, code string) error {
	if user.TwoFactorSecret == nil || *user.TwoFactorSecret == "" {
		return ErrInvalidOrExpiredCode
	}

	valid, err := totp.ValidateCustom(code, *user.TwoFactorSecret, s.now().UTC(), totp.ValidateOpts{
		Period:    totpPeriod,
		Skew:      totpSkew,
		Digits:    totpDigits,
		Algorithm: totpAlgo,
	})
	if err != nil || !valid {
		return ErrInvalidOrExpiredCode
	}
	return nil
}

// provisioningURI builds the otpauth:// URL an authenticator app scans. The
// secret already exists in the database so we construct the URL directly
// rather than generating a fresh key.
func (s *TwoFactorService) provisioningURI(account, secret string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", s.Issuer)
	v.Set("algorithm", totpAlgo.String())
	v.Set("digits", totpDigits.String())
	v.Set("period", strconv.Itoa(totpPeriod))

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + s.Issuer + ":" + account,
		RawQuery: v.Encode(),
	}
	return u.String()
}

// newTwoFactorSecret returns a random base32-encoded TOTP secret.
func newTwoFactorSecret() (string, error) {
	raw := make([]byte, secretBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("failed to generate two-factor secret: %w", err)
	}
	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw), nil
}
