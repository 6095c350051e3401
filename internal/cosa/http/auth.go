package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/service"
	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/cosahq/cosa/pkg/httpx"
	"github.com/cosahq/cosa/pkg/qrx"
	"github.com/cosahq/cosa/pkg/slogx"
)

// AuthHandler handles registration and the session lifecycle.
type AuthHandler struct {
	Accounts *service.AccountService
	Sessions *service.SessionService
}

// HandleRegister handles POST /v1/auth/register
//
//	@Summary		Register a new account
//	@Description	Creates an account with one of the roles student, coordinator, employer or admin.
//	@Description	New accounts are active and must enrol a second factor on first login.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cosasdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	cosasdk.UserResponse	"Created account"
//	@Failure		400		{object}	cosasdk.ErrorResponse	"Malformed request or invalid role"
//	@Failure		409		{object}	cosasdk.ErrorResponse	"Username or email already taken"
//	@Failure		500		{object}	cosasdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.Accounts.Register(r.Context(), service.RegisterParams{
		Role:      req.Role,
		Username:  req.Username,
		Email:     req.Email,
		Name:      req.Name,
		StudentID: req.StudentID,
		Password:  req.Password,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toUserResponse(user))
}

// HandleLogin handles POST /v1/auth/login
//
//	@Summary		Log in
//	@Description	Verifies a username-or-email plus password pair and opens a session.
//	@Description	When the account requires a second factor the session starts pending and the
//	@Description	response carries a challenge; first-time logins include enrolment material
//	@Description	(secret, provisioning URI and QR code).
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cosasdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	cosasdk.LoginResponse	"Session token and challenge"
//	@Failure		401		{object}	cosasdk.ErrorResponse	"Invalid credentials"
//	@Failure		403		{object}	cosasdk.ErrorResponse	"Account deactivated"
//	@Failure		500		{object}	cosasdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req cosasdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	result, err := h.Sessions.Login(ctx, req.Login, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := cosasdk.LoginResponse{
		Token:                result.Token,
		Phase:                string(result.Session.Phase),
		ExpiresAt:            result.Session.ExpiresAt,
		SecondFactorRequired: result.Challenge != nil,
	}
	if result.Challenge != nil {
		challenge := cosasdk.ChallengeResponse{
			SetupMode:       result.Challenge.SetupMode,
			Secret:          result.Challenge.Secret,
			ProvisioningURI: result.Challenge.ProvisioningURI,
		}
		if result.Challenge.SetupMode {
			qr, err := qrx.RenderDataURI(result.Challenge.ProvisioningURI, qrx.DefaultSize)
			if err != nil {
				// The secret and URI are still usable without the image.
				log.Warn("failed to render enrolment qr code", "err", err)
			} else {
				challenge.QRCode = qr
			}
		}
		resp.Challenge = &challenge
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleVerify handles POST /v1/auth/verify
//
//	@Summary		Verify second factor
//	@Description	Completes a pending login with a six-digit TOTP code. The first successful
//	@Description	verification finishes enrolment; the session is promoted and snapshots the
//	@Description	account's role for its lifetime.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cosasdk.VerifyRequest	true	"TOTP code"
//	@Success		200		{object}	cosasdk.SessionResponse	"Authenticated session"
//	@Failure		401		{object}	cosasdk.ErrorResponse	"Invalid code, token or expired session"
//	@Failure		429		{object}	cosasdk.ErrorResponse	"Attempt budget exhausted"
//	@Failure		500		{object}	cosasdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/verify [post].
func (h *AuthHandler) HandleVerify(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	session, err := h.Sessions.VerifySecondFactor(r.Context(), bearerToken(r), req.Code)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, cosasdk.SessionResponse{
		Phase:     string(session.Phase),
		Role:      session.Role.String(),
		ExpiresAt: session.ExpiresAt,
	})
}

// HandleLogout handles POST /v1/auth/logout
//
//	@Summary		Log out
//	@Description	Destroys the caller's session. Works in any phase and never fails on an
//	@Description	unknown token, so clients can always clear their state.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Success		204	"Session destroyed"
//	@Failure		500	{object}	cosasdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Logout(r.Context(), bearerToken(r)); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(u domain.User) cosasdk.UserResponse {
	return cosasdk.UserResponse{
		ID:                 u.ID,
		Role:               u.Role.String(),
		Username:           u.Username,
		Email:              u.Email,
		Name:               u.Name,
		StudentID:          u.StudentID,
		Active:             u.Active,
		TwoFactorEnabled:   u.TwoFactorEnabled,
		TwoFactorSetupDone: u.TwoFactorSetupDone,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
