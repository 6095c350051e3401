package cosasdk

import (
	"context"
	"net/http"
)

// Session is an authenticated (or pending) handle on the service. It is safe
// for concurrent use; the token never changes after login.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the opaque bearer token, e.g. for persisting across runs.
func (s *Session) Token() string {
	return s.token
}

// VerifySecondFactor completes a pending login with a TOTP code.
func (s *Session) VerifySecondFactor(ctx context.Context, code string) (*SessionResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/v1/auth/verify", VerifyRequest{Code: code}, s.token)
	if err != nil {
		return nil, err
	}

	var session SessionResponse
	if err := decodeJSON(resp, &session, http.StatusOK); err != nil {
		return nil, err
	}
	return &session, nil
}

// Logout destroys the session server-side. It succeeds regardless of the
// session's phase.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/v1/auth/logout", nil, s.token)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// Me returns the authenticated account.
func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/me", nil, s.token)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}
