package http

import (
	"encoding/json"
	"net/http"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/service"
	"github.com/cosahq/cosa/pkg/cosasdk"
	"github.com/cosahq/cosa/pkg/httpx"
)

// ReportsHandler handles work-term report endpoints.
type ReportsHandler struct {
	Reports *service.ReportService
}

// HandleCreate handles POST /v1/reports
//
//	@Summary		Submit a report
//	@Description	Records a work-term report submission for the calling student.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		cosasdk.ReportCreateRequest	true	"Report metadata"
//	@Success		201		{object}	cosasdk.ReportResponse		"Recorded submission"
//	@Failure		400		{object}	cosasdk.ErrorResponse		"Malformed request"
//	@Failure		403		{object}	cosasdk.ErrorResponse		"Caller is not a student"
//	@Router			/v1/reports [post].
func (h *ReportsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req cosasdk.ReportCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		cosasdk.ErrInvalidRequest.WriteError(w)
		return
	}

	report, err := h.Reports.SubmitReport(r.Context(),
		httpx.UserIDFromContext(r.Context()), req.Filename, req.ReportType)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toReportResponse(report))
}

// HandleList handles GET /v1/reports
//
//	@Summary		List all reports
//	@Description	Returns every submission for review. Coordinator or admin only.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		cosasdk.ReportResponse	"All submissions"
//	@Failure		403	{object}	cosasdk.ErrorResponse	"Caller lacks the coordinator role"
//	@Router			/v1/reports [get].
func (h *ReportsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Reports.ListReports(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReportResponses(reports))
}

// HandleListMine handles GET /v1/reports/mine
//
//	@Summary		List own reports
//	@Description	Returns the calling student's submissions.
//	@Tags			Reports
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		cosasdk.ReportResponse	"Own submissions"
//	@Failure		403	{object}	cosasdk.ErrorResponse	"Caller is not a student"
//	@Router			/v1/reports/mine [get].
func (h *ReportsHandler) HandleListMine(w http.ResponseWriter, r *http.Request) {
	reports, err := h.Reports.ListReportsByStudent(r.Context(), httpx.UserIDFromContext(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toReportResponses(reports))
}

func toReportResponse(rep domain.Report) cosasdk.ReportResponse {
	return cosasdk.ReportResponse{
		ID:          rep.ID,
		StudentID:   rep.StudentID,
		Filename:    rep.Filename,
		ReportType:  rep.ReportType,
		SubmittedAt: rep.SubmittedAt,
	}
}

func toReportResponses(reports []domain.Report) []cosasdk.ReportResponse {
	resp := make([]cosasdk.ReportResponse, 0, len(reports))
	for _, rep := range reports {
		resp = append(resp, toReportResponse(rep))
	}
	return resp
}
