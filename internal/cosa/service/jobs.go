package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/idx"
)

// JobService manages employer job postings.
type JobService struct {
	Store store.Store
}

type PostJobParams struct {
	Title       string
	Description string
	Location    string
	JobType     string
	Deadline    time.Time
}

// PostJob creates a job posting owned by the given employer.
func (s *JobService) PostJob(ctx context.Context, employerID string, p PostJobParams) (domain.JobPosting, error) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return domain.JobPosting{}, fmt.Errorf("%w: job title is required", ErrInvalidRequest)
	}

	job := domain.JobPosting{
		ID:          idx.New().String(),
		EmployerID:  employerID,
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		Location:    strings.TrimSpace(p.Location),
		JobType:     strings.TrimSpace(p.JobType),
		Deadline:    p.Deadline,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.Store.Jobs().CreateJobPosting(ctx, job); err != nil {
		return domain.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}
	return job, nil
}

// ListJobs returns all postings, newest first.
func (s *JobService) ListJobs(ctx context.Context) ([]domain.JobPosting, error) {
	jobs, err := s.Store.Jobs().ListJobPostings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	return jobs, nil
}

// ListJobsByEmployer returns an employer's own postings.
func (s *JobService) ListJobsByEmployer(ctx context.Context, employerID string) ([]domain.JobPosting, error) {
	jobs, err := s.Store.Jobs().ListJobPostingsByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}
	return jobs, nil
}
