package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosahq/cosa/internal/cosa/service"
	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/cosahq/cosa/pkg/httpx"
)

// MeHandler handles GET /v1/me
//
//	@Summary		Current account
//	@Description	Returns the account behind the caller's session.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	cosasdk.UserResponse	"The caller's account"
//	@Failure		401	{object}	cosasdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		500	{object}	cosasdk.ErrorResponse	"Internal server error"
//	@Router			/v1/me [get].
func MeHandler(accounts *service.AccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := accounts.GetUser(r.Context(), httpx.UserIDFromContext(r.Context()))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
	}
}

// UsersHandler handles the admin account-management endpoints.
type UsersHandler struct {
	Accounts *service.AccountService
}

// HandleList handles GET /v1/users
//
//	@Summary		List accounts
//	@Description	Returns every account, oldest first. Admin only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		cosasdk.UserResponse	"All accounts"
//	@Failure		401	{object}	cosasdk.ErrorResponse	"Invalid or missing session token"
//	@Failure		403	{object}	cosasdk.ErrorResponse	"Caller is not an admin"
//	@Failure		500	{object}	cosasdk.ErrorResponse	"Internal server error"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := h.Accounts.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]cosasdk.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet handles GET /v1/users/{id}
//
//	@Summary		Get one account
//	@Description	Returns a single account by id. Admin only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string					true	"User ID"
//	@Success		200	{object}	cosasdk.UserResponse	"The account"
//	@Failure		404	{object}	cosasdk.ErrorResponse	"No such account"
//	@Router			/v1/users/{id} [get].
func (h *UsersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, err := h.Accounts.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResponse(user))
}

// HandleSetActive handles PATCH /v1/users/{id}/active
//
//	@Summary		Activate or deactivate an account
//	@Description	Deactivation destroys every session the account holds, locking it out
//	@Description	immediately. Admin only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string						true	"User ID"
//	@Param			request	body	cosasdk.SetActiveRequest	true	"New active flag"
//	@Success		204		"Flag updated"
//	@Failure		404		{object}	cosasdk.ErrorResponse	"No such account"
//	@Router			/v1/users/{id}/active [patch].
func (h *UsersHandler) HandleSetActive(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.Accounts.SetActive(r.Context(), r.PathValue("id"), req.Active); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleSetRole handles PATCH /v1/users/{id}/role
//
//	@Summary		Change an account's role
//	@Description	Live sessions keep the role they were promoted with; the new role takes
//	@Description	effect at the account's next login. Admin only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Param			id		path	string					true	"User ID"
//	@Param			request	body	cosasdk.SetRoleRequest	true	"New role"
//	@Success		204		"Role updated"
//	@Failure		400		{object}	cosasdk.ErrorResponse	"Unknown role"
//	@Failure		404		{object}	cosasdk.ErrorResponse	"No such account"
//	@Router			/v1/users/{id}/role [patch].
func (h *UsersHandler) HandleSetRole(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	if err := h.Accounts.SetRole(r.Context(), r.PathValue("id"), req.Role); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete handles DELETE /v1/users/{id}
//
//	@Summary		Delete an account
//	@Description	Removes the account; its sessions and owned records cascade. Admin only.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204	"Account deleted"
//	@Failure		404	{object}	cosasdk.ErrorResponse	"No such account"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Accounts.DeleteUser(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
