package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/cosahq/cosa/pkg/idx"
)

// ApplicationService manages co-op programme applications: one per student,
// reviewed by coordinators.
type ApplicationService struct {
	Store store.Store
}

type SubmitApplicationParams struct {
	FullName      string
	Address       string
	DateOfBirth   time.Time
	StudentNumber string
	StudentYear   int
	LinkedIn      string
}

// SubmitApplication files a student's application. Each student may hold at
// most one, and student numbers are globally unique; both collisions come
// back as ErrConflict. New applications start under review.
func (s *ApplicationService) SubmitApplication(ctx context.Context, studentID string, p SubmitApplicationParams) (domain.CoopApplication, error) {
	fullName := strings.TrimSpace(p.FullName)
	studentNumber := strings.TrimSpace(p.StudentNumber)
	if fullName == "" || studentNumber == "" {
		return domain.CoopApplication{}, fmt.Errorf("%w: full name and student number are required", ErrInvalidRequest)
	}

	now := time.Now().UTC()
	app := domain.CoopApplication{
		ID:            idx.New().String(),
		StudentID:     studentID,
		FullName:      fullName,
		Address:       strings.TrimSpace(p.Address),
		DateOfBirth:   p.DateOfBirth,
		StudentNumber: studentNumber,
		StudentYear:   p.StudentYear,
		LinkedIn:      strings.TrimSpace(p.LinkedIn),
		Status:        domain.ApplicationUnderReview,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.Applications().CreateApplication(ctx, app); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.CoopApplication{}, ErrConflict
		}
		return domain.CoopApplication{}, fmt.Errorf("failed to create application: %w", err)
	}
	return app, nil
}

// GetOwnApplication returns the student's application, if any.
func (s *ApplicationService) GetOwnApplication(ctx context.Context, studentID string) (domain.CoopApplication, error) {
	app, err := s.Store.Applications().GetApplicationByStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CoopApplication{}, ErrNotFound
		}
		return domain.CoopApplication{}, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ApplicationSearchParams narrows the review queue. Empty fields match
// everything; set fields combine.
type ApplicationSearchParams struct {
	Name          string
	LinkedIn      string
	StudentNumber string
}

// ListApplications returns the coordinator review queue, optionally narrowed
// by name or LinkedIn substring and exact student number.
func (s *ApplicationService) ListApplications(ctx context.Context, p ApplicationSearchParams) ([]domain.CoopApplication, error) {
	apps, err := s.Store.Applications().ListApplications(ctx, store.ApplicationFilter{
		Name:          strings.TrimSpace(p.Name),
		LinkedIn:      strings.TrimSpace(p.LinkedIn),
		StudentNumber: strings.TrimSpace(p.StudentNumber),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

// ReviewApplication sets the review outcome for an application.
func (s *ApplicationService) ReviewApplication(ctx context.Context, applicationID, status string) (domain.CoopApplication, error) {
	parsed, ok := domain.ParseApplicationStatus(status)
	if !ok {
		return domain.CoopApplication{}, ErrInvalidStatus
	}

	if err := s.Store.Applications().UpdateApplicationStatus(ctx, applicationID, parsed); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.CoopApplication{}, ErrNotFound
		}
		return domain.CoopApplication{}, fmt.Errorf("failed to update application status: %w", err)
	}

	app, err := s.Store.Applications().GetApplicationByID(ctx, applicationID)
	if err != nil {
		return domain.CoopApplication{}, fmt.Errorf("failed to reload application: %w", err)
	}
	return app, nil
}
