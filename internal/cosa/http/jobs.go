package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/service"
	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/cosahq/cosa/pkg/httpx"
)

// JobsHandler handles job posting endpoints.
type JobsHandler struct {
	Jobs *service.JobService
}

// HandleCreate handles POST /v1/jobs
//
//	@Summary		Post a job
//	@Description	Creates a job posting owned by the calling employer.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cosasdk.JobCreateRequest	true	"Job details"
//	@Success		201		{object}	cosasdk.JobResponse			"Created posting"
//	@Failure		400		{object}	cosasdk.ErrorResponse		"Malformed request"
//	@Failure		403		{object}	cosasdk.ErrorResponse		"Caller is not an employer"
//	@Router			/v1/jobs [post].
func (h *JobsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.JobCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	job, err := h.Jobs.PostJob(r.Context(), httpx.UserIDFromContext(r.Context()), service.PostJobParams{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		JobType:     req.JobType,
		Deadline:    req.Deadline,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toJobResponse(job))
}

// HandleList handles GET /v1/jobs
//
//	@Summary		List jobs
//	@Description	Returns every posting, newest first. Any authenticated role.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		cosasdk.JobResponse		"All postings"
//	@Failure		401	{object}	cosasdk.ErrorResponse	"Invalid or missing session token"
//	@Router			/v1/jobs [get].
func (h *JobsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Jobs.ListJobs(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toJobResponses(jobs))
}

// HandleListMine handles GET /v1/jobs/mine
//
//	@Summary		List own jobs
//	@Description	Returns the calling employer's postings.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		cosasdk.JobResponse		"Own postings"
//	@Failure		403	{object}	cosasdk.ErrorResponse	"Caller is not an employer"
//	@Router			/v1/jobs/mine [get].
func (h *JobsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Jobs.ListJobsByEmployer(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toJobResponses(jobs))
}

func toJobResponse(j domain.JobPosting) cosasdk.JobResponse {
	return cosasdk.JobResponse{
		ID:          j.ID,
		EmployerID:  j.EmployerID,
		Title:       j.Title,
		Description: j.Description,
		Location:    j.Location,
		JobType:     j.JobType,
		Deadline:    j.Deadline,
		CreatedAt:   j.CreatedAt,
	}
}

func toJobResponses(jobs []domain.JobPosting) []cosasdk.JobResponse {
	resp := make([]cosasdk.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		resp = append(resp, toJobResponse(j))
	}
	return resp
}
