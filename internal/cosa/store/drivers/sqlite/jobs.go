package sqlite

import (
	"context"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
)

type jobsRepo struct {
	q querier
}

func (r *jobsRepo) CreateJobPosting(ctx context.Context, j domain.JobPosting) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO job_postings (
			id, employer_id, title, description, location, job_type,
			deadline, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		j.ID, j.EmployerID, j.Title, j.Description, j.Location, j.JobType,
		j.Deadline.UTC(), time.Now().UTC(),
	)
	return mapConstraint(err)
}

func (r *jobsRepo) ListJobPostings(ctx context.Context) ([]domain.JobPosting, error) {
	return r.list(ctx, `
		SELECT id, employer_id, title, description, location, job_type,
			deadline, created_at
		FROM job_postings ORDER BY created_at DESC, id DESC`)
}

func (r *jobsRepo) ListJobPostingsByEmployer(ctx context.Context, employerID string) ([]domain.JobPosting, error) {
	return r.list(ctx, `
		SELECT id, employer_id, title, description, location, job_type,
			deadline, created_at
		FROM job_postings WHERE employer_id = ?
		ORDER BY created_at DESC, id DESC`, employerID)
}

func (r *jobsRepo) list(ctx context.Context, query string, args ...any) ([]domain.JobPosting, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.JobPosting
	for rows.Next() {
		var j domain.JobPosting
		if err := rows.Scan(
			&j.ID, &j.EmployerID, &j.Title, &j.Description, &j.Location,
			&j.JobType, &j.Deadline, &j.CreatedAt,
		); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}
