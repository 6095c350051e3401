package cosasdk

import (
	"context"
	"net/http"
	"net/url"
)

// PostJob creates a job posting. Employer role required.
func (s *Session) PostJob(ctx context.Context, req JobCreateRequest) (*JobResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/v1/jobs", req, s.token)
	if err != nil {
		return nil, err
	}

	var job JobResponse
	if err := decodeJSON(resp, &job, http.StatusCreated); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs lists every job posting. Any authenticated role.
func (s *Session) ListJobs(ctx context.Context) ([]JobResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/jobs", nil, s.token)
	if err != nil {
		return nil, err
	}

	var jobs []JobResponse
	if err := decodeJSON(resp, &jobs, http.StatusOK); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListOwnJobs lists the caller's own postings. Employer role required.
func (s *Session) ListOwnJobs(ctx context.Context) ([]JobResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/jobs/mine", nil, s.token)
	if err != nil {
		return nil, err
	}

	var jobs []JobResponse
	if err := decodeJSON(resp, &jobs, http.StatusOK); err != nil {
		return nil, err
	}
	return jobs, nil
}

// SubmitReport records a work-term report. Student role required.
func (s *Session) SubmitReport(ctx context.Context, req ReportCreateRequest) (*ReportResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/v1/reports", req, s.token)
	if err != nil {
		return nil, err
	}

	var report ReportResponse
	if err := decodeJSON(resp, &report, http.StatusCreated); err != nil {
		return nil, err
	}
	return &report, nil
}

// ListReports lists every submitted report. Coordinator or admin role.
func (s *Session) ListReports(ctx context.Context) ([]ReportResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/reports", nil, s.token)
	if err != nil {
		return nil, err
	}

	var reports []ReportResponse
	if err := decodeJSON(resp, &reports, http.StatusOK); err != nil {
		return nil, err
	}
	return reports, nil
}

// ListOwnReports lists the caller's submissions. Student role required.
func (s *Session) ListOwnReports(ctx context.Context) ([]ReportResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/reports/mine", nil, s.token)
	if err != nil {
		return nil, err
	}

	var reports []ReportResponse
	if err := decodeJSON(resp, &reports, http.StatusOK); err != nil {
		return nil, err
	}
	return reports, nil
}

// SubmitApplication files a co-op application. Student role required.
func (s *Session) SubmitApplication(ctx context.Context, req ApplicationCreateRequest) (*ApplicationResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/v1/applications", req, s.token)
	if err != nil {
		return nil, err
	}

	var app ApplicationResponse
	if err := decodeJSON(resp, &app, http.StatusCreated); err != nil {
		return nil, err
	}
	return &app, nil
}

// GetOwnApplication returns the caller's application. Student role required.
func (s *Session) GetOwnApplication(ctx context.Context) (*ApplicationResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodGet, "/v1/applications/mine", nil, s.token)
	if err != nil {
		return nil, err
	}

	var app ApplicationResponse
	if err := decodeJSON(resp, &app, http.StatusOK); err != nil {
		return nil, err
	}
	return &app, nil
}

// ApplicationFilter narrows ListApplications. Empty fields match everything.
type ApplicationFilter struct {
	// Name is matched as a case-insensitive substring of the full name.
	Name string
	// LinkedIn is matched as a case-insensitive substring.
	LinkedIn string
	// StudentNumber is matched exactly.
	StudentNumber string
}

// ListApplications lists the review queue, optionally narrowed by filter.
// Coordinator or admin role.
func (s *Session) ListApplications(ctx context.Context, filter ApplicationFilter) ([]ApplicationResponse, error) {
	q := url.Values{}
	if filter.Name != "" {
		q.Set("name", filter.Name)
	}
	if filter.LinkedIn != "" {
		q.Set("linkedin", filter.LinkedIn)
	}
	if filter.StudentNumber != "" {
		q.Set("student_number", filter.StudentNumber)
	}
	path := "/v1/applications"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.client.doJSON(ctx, http.MethodGet, path, nil, s.token)
	if err != nil {
		return nil, err
	}

	var apps []ApplicationResponse
	if err := decodeJSON(resp, &apps, http.StatusOK); err != nil {
		return nil, err
	}
	return apps, nil
}

// ReviewApplication sets an application's review outcome. Coordinator or
// admin role.
func (s *Session) ReviewApplication(ctx context.Context, applicationID, status string) (*ApplicationResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPatch,
		"/v1/applications/"+applicationID+"/status",
		ApplicationStatusRequest{Status: status}, s.token)
	if err != nil {
		return nil, err
	}

	var app ApplicationResponse
	if err := decodeJSON(resp, &app, http.StatusOK); err != nil {
		return nil, err
	}
	return &app, nil
}
