package cosasdk

import (
	"context"
	"net/http"
)

// ListUsers returns every account. Admin role required.
func (s *Session) ListUsers(ctx context.Context) ([]UserResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/users", nil, s.token)
	if err != nil {
		return nil, err
	}

	var users []UserResponse
	if err := decodeJSON(resp, &users, http.StatusOK); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns one account by id. Admin role required.
func (s *Session) GetUser(ctx context.Context, userID string) (*UserResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/users/"+userID, nil, s.token)
	if err != nil {
		return nil, err
	}

	var user UserResponse
	if err := decodeJSON(resp, &user, http.StatusOK); err != nil {
		return nil, err
	}
	return &user, nil
}

// SetUserActive activates or deactivates an account. Deactivation destroys
// the account's sessions immediately. Admin role required.
func (s *Session) SetUserActive(ctx context.Context, userID string, active bool) error {
	resp, err := s.client.doJSON(ctx, http.MethodPatch,
		"/v1/users/"+userID+"/active", SetActiveRequest{Active: active}, s.token)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// SetUserRole replaces an account's role. Takes effect at the account's next
// login. Admin role required.
func (s *Session) SetUserRole(ctx context.Context, userID, role string) error {
	resp, err := s.client.doJSON(ctx, http.MethodPatch,
		"/v1/users/"+userID+"/role", SetRoleRequest{Role: role}, s.token)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// DeleteUser removes an account and everything it owns. Admin role required.
func (s *Session) DeleteUser(ctx context.Context, userID string) error {
	resp, err := s.client.doJSON(ctx, http.MethodDelete, "/v1/users/"+userID, nil, s.token)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
