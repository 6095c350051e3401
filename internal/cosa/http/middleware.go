package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/service"
	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/cosahq/cosa/pkg/httpx"
	"github.com/cosahq/cosa/pkg/slogx"
)

// bearerToken extracts the opaque session token from the Authorization
// header. Returns "" when the header is missing or malformed.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

// RequireSession gates a handler behind the access-control check: live
// authenticated session, active account, and (when roles are given) a role
// snapshot on the allow-list. The user ID and role land on the context.
func RequireSession(gate *service.GateService, roles ...domain.Role) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			session, user, err := gate.Authorize(ctx, bearerToken(r), roles...)
			if err != nil {
				writeServiceError(w, r, err)
				return
			}

			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, user.ID)
			ctx = context.WithValue(ctx, httpx.CtxKeyRole, session.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeServiceError maps service sentinel errors onto the API error
// envelope. Unexpected errors log and become an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		cosasdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		cosasdk.ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrAccountDeactivated):
		cosasdk.ErrAccountDeactivated.WriteError(w)
	case errors.Is(err, service.ErrConflict):
		cosasdk.ErrConflict.WriteError(w)
	case errors.Is(err, service.ErrInvalidRole):
		cosasdk.ErrInvalidRole.WriteError(w)
	case errors.Is(err, service.ErrInvalidStatus):
		cosasdk.ErrInvalidRequest.WriteError(w)
	case errors.Is(err, service.ErrUnauthenticated):
		cosasdk.ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrSessionExpired):
		cosasdk.ErrSessionExpired.WriteError(w)
	case errors.Is(err, service.ErrInvalidOrExpiredCode):
		cosasdk.ErrInvalidCode.WriteError(w)
	case errors.Is(err, service.ErrTooManyAttempts):
		cosasdk.ErrTooManyAttempts.WriteError(w)
	case errors.Is(err, service.ErrForbidden):
		cosasdk.ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrNotFound):
		cosasdk.ErrNotFound.WriteError(w)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		cosasdk.ErrServerError.WriteError(w)
	}
}
