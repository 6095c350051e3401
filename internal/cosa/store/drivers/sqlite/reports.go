package sqlite

import (
	"context"

	"github.com/cosahq/cosa/internal/cosa/domain"
)

type reportsRepo struct {
	q querier
}

func (r *reportsRepo) CreateReport(ctx context.Context, rep domain.Report) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO reports (id, student_id, filename, report_type, submitted_at)
		VALUES (?, ?, ?, ?, ?)`,
		rep.ID, rep.StudentID, rep.Filename, rep.ReportType, rep.SubmittedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *reportsRepo) ListReports(ctx context.Context) ([]domain.Report, error) {
	return r.list(ctx, `
		SELECT id, student_id, filename, report_type, submitted_at
		FROM reports ORDER BY submitted_at DESC, id DESC`)
}

func (r *reportsRepo) ListReportsByStudent(ctx context.Context, studentID string) ([]domain.Report, error) {
	return r.list(ctx, `
		SELECT id, student_id, filename, report_type, submitted_at
		FROM reports WHERE student_id = ?
		ORDER BY submitted_at DESC, id DESC`, studentID)
}

func (r *reportsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Report, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []domain.Report
	for rows.Next() {
		var rep domain.Report
		if err := rows.Scan(
			&rep.ID, &rep.StudentID, &rep.Filename, &rep.ReportType, &rep.SubmittedAt,
		); err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, rows.Err()
}
