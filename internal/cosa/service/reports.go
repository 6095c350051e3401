package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/idx"
)

// ReportService records work-term report submissions. Only the metadata is
// kept here; the file itself lives with whatever blob storage fronts this.
type ReportService struct {
	Store store.Store
}

// SubmitReport records a student's report submission.
func (s *ReportService) SubmitReport(ctx context.Context, studentID, filename, reportType string) (domain.Report, error) {
	filename = filepath.Base(strings.TrimSpace(filename))
	if filename == "" || filename == "." {
		return domain.Report{}, fmt.Errorf("%w: report filename is required", ErrInvalidRequest)
	}

	report := domain.Report{
		ID:          idx.New().String(),
		StudentID:   studentID,
		Filename:    filename,
		ReportType:  strings.TrimSpace(reportType),
		SubmittedAt: time.Now().UTC(),
	}

	if err := s.Store.Reports().CreateReport(ctx, report); err != nil {
		return domain.Report{}, fmt.Errorf("failed to record report: %w", err)
	}
	return report, nil
}

// ListReports returns every submission for the coordinator view.
func (s *ReportService) ListReports(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.Store.Reports().ListReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}

// ListReportsByStudent returns a student's own submissions.
func (s *ReportService) ListReportsByStudent(ctx context.Context, studentID string) ([]domain.Report, error) {
	reports, err := s.Store.Reports().ListReportsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return reports, nil
}
