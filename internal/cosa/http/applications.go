package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/service"
	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/cosahq/cosa/pkg/httpx"
)

// ApplicationsHandler handles co-op application endpoints.
type ApplicationsHandler struct {
	Applications *service.ApplicationService
}

// HandleCreate handles POST /v1/applications
//
//	@Summary		Submit an application
//	@Description	Files the calling student's co-op application. Each student may hold at
//	@Description	most one; new applications start under review.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cosasdk.ApplicationCreateRequest	true	"Application details"
//	@Success		201		{object}	cosasdk.ApplicationResponse			"Filed application"
//	@Failure		400		{object}	cosasdk.ErrorResponse				"Malformed request"
//	@Failure		409		{object}	cosasdk.ErrorResponse				"Duplicate application or student number"
//	@Router			/v1/applications [post].
func (h *ApplicationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.ApplicationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	app, err := h.Applications.SubmitApplication(r.Context(),
		httpx.UserIDFromContext(r.Context()), service.SubmitApplicationParams{
			FullName:      req.FullName,
			Address:       req.Address,
			DateOfBirth:   req.DateOfBirth,
			StudentNumber: req.StudentNumber,
			StudentYear:   req.StudentYear,
			LinkedIn:      req.LinkedIn,
		})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toApplicationResponse(app))
}

// HandleGetMine handles GET /v1/applications/mine
//
//	@Summary		Get own application
//	@Description	Returns the calling student's application.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	cosasdk.ApplicationResponse	"The application"
//	@Failure		404	{object}	cosasdk.ErrorResponse		"No application filed yet"
//	@Router			/v1/applications/mine [get].
func (h *ApplicationsHandler) HandleGetMine(w http.ResponseWriter, r *http.Request) {
	app, err := h.Applications.GetOwnApplication(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toApplicationResponse(app))
}

// HandleList handles GET /v1/applications
//
//	@Summary		List applications
//	@Description	Returns the review queue, optionally narrowed by applicant name,
//	@Description	LinkedIn or student number. Coordinator or admin only.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Produce		json
//	@Param			name			query		string						false	"Substring of the full name, case-insensitive"
//	@Param			linkedin		query		string						false	"Substring of the LinkedIn field, case-insensitive"
//	@Param			student_number	query		string						false	"Exact student number"
//	@Success		200				{array}		cosasdk.ApplicationResponse	"Matching applications"
//	@Failure		403				{object}	cosasdk.ErrorResponse		"Caller lacks the coordinator role"
//	@Router			/v1/applications [get].
func (h *ApplicationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	apps, err := h.Applications.ListApplications(r.Context(), service.ApplicationSearchParams{
		Name:          q.Get("name"),
		LinkedIn:      q.Get("linkedin"),
		StudentNumber: q.Get("student_number"),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := make([]cosasdk.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		resp = append(resp, toApplicationResponse(app))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleSetStatus handles PATCH /v1/applications/{id}/status
//
//	@Summary		Review an application
//	@Description	Sets the outcome to Under Review, Accepted or Rejected. Coordinator or
//	@Description	admin only.
//	@Tags			Applications
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Application ID"
//	@Param			request	body		cosasdk.ApplicationStatusRequest	true	"New status"
//	@Success		200		{object}	cosasdk.ApplicationResponse			"Updated application"
//	@Failure		400		{object}	cosasdk.ErrorResponse				"Unknown status"
//	@Failure		404		{object}	cosasdk.ErrorResponse				"No such application"
//	@Router			/v1/applications/{id}/status [patch].
func (h *ApplicationsHandler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.ApplicationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	app, err := h.Applications.ReviewApplication(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toApplicationResponse(app))
}

func toApplicationResponse(app domain.CoopApplication) cosasdk.ApplicationResponse {
	return cosasdk.ApplicationResponse{
		ID:            app.ID,
		StudentID:     app.StudentID,
		FullName:      app.FullName,
		Address:       app.Address,
		DateOfBirth:   app.DateOfBirth,
		StudentNumber: app.StudentNumber,
		StudentYear:   app.StudentYear,
		LinkedIn:      app.LinkedIn,
		Status:        string(app.Status),
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}
