package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
	"github.com/stretchr/testify/require"
)

func TestJobService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	employer := env.registerUser(t, "employer", "acme", "password123")
	other := env.registerUser(t, "employer", "globex", "password123")

	svc := &JobService{Store: env.Store}

	t.Run("requires a title", func(t *testing.T) {
		_, err := svc.PostJob(ctx, employer.ID, PostJobParams{Title: "   "})
		require.Error(t, err)
	})

	t.Run("posts and lists", func(t *testing.T) {
		deadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
		job, err := svc.PostJob(ctx, employer.ID, PostJobParams{
			Title:       "Backend Intern",
			Description: "Go services",
			Location:    "Halifax",
			JobType:     "internship",
			Deadline:    deadline,
		})
		require.NoError(t, err)
		require.Equal(t, employer.ID, job.EmployerID)

		_, err = svc.PostJob(ctx, other.ID, PostJobParams{Title: "QA Co-op"})
		require.NoError(t, err)

		all, err := svc.ListJobs(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		mine, err := svc.ListJobsByEmployer(ctx, employer.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, "Backend Intern", mine[0].Title)
	})
}

func TestReportService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	student := env.registerUser(t, "student", "alice", "password123")
	other := env.registerUser(t, "student", "bob", "password123")

	svc := &ReportService{Store: env.Store}

	t.Run("strips path components from filenames", func(t *testing.T) {
		report, err := svc.SubmitReport(ctx, student.ID, "../../etc/term1.pdf", "work-term")
		require.NoError(t, err)
		require.Equal(t, "term1.pdf", report.Filename)
	})

	t.Run("rejects empty filenames", func(t *testing.T) {
		_, err := svc.SubmitReport(ctx, student.ID, "   ", "work-term")
		require.Error(t, err)
	})

	t.Run("lists by student", func(t *testing.T) {
		_, err := svc.SubmitReport(ctx, other.ID, "term2.pdf", "work-term")
		require.NoError(t, err)

		all, err := svc.ListReports(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)

		mine, err := svc.ListReportsByStudent(ctx, student.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		require.Equal(t, "term1.pdf", mine[0].Filename)
	})
}

func TestApplicationService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.registerUser(t, "student", "alice", "password123")
	bob := env.registerUser(t, "student", "bob", "password123")

	svc := &ApplicationService{Store: env.Store}

	params := SubmitApplicationParams{
		FullName:      "Alice Example",
		Address:       "1 Main St",
		DateOfBirth:   time.Date(2004, 5, 1, 0, 0, 0, 0, time.UTC),
		StudentNumber: "A00112233",
		StudentYear:   3,
		LinkedIn:      "https://linkedin.com/in/alice",
	}

	t.Run("submits with under-review status", func(t *testing.T) {
		app, err := svc.SubmitApplication(ctx, alice.ID, params)
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationUnderReview, app.Status)
	})

	t.Run("one application per student", func(t *testing.T) {
		p := params
		p.StudentNumber = "A00999999"
		_, err := svc.SubmitApplication(ctx, alice.ID, p)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("student numbers are unique", func(t *testing.T) {
		p := params
		p.FullName = "Bob Example"
		_, err := svc.SubmitApplication(ctx, bob.ID, p)
		require.ErrorIs(t, err, ErrConflict)
	})

	t.Run("review updates status", func(t *testing.T) {
		app, err := svc.GetOwnApplication(ctx, alice.ID)
		require.NoError(t, err)

		reviewed, err := svc.ReviewApplication(ctx, app.ID, "Accepted")
		require.NoError(t, err)
		require.Equal(t, domain.ApplicationAccepted, reviewed.Status)
		require.True(t, reviewed.UpdatedAt.After(app.UpdatedAt) || reviewed.UpdatedAt.Equal(app.UpdatedAt))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		app, err := svc.GetOwnApplication(ctx, alice.ID)
		require.NoError(t, err)

		_, err = svc.ReviewApplication(ctx, app.ID, "Maybe")
		require.Error(t, err)
	})

	t.Run("review of missing application", func(t *testing.T) {
		_, err := svc.ReviewApplication(ctx, "no-such-id", "Accepted")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("search narrows the queue", func(t *testing.T) {
		carol := env.registerUser(t, "student", "carol", "password123")
		_, err := svc.SubmitApplication(ctx, carol.ID, SubmitApplicationParams{
			FullName:      "Carol Mercer",
			StudentNumber: "A00445566",
			StudentYear:   2,
			LinkedIn:      "https://linkedin.com/in/cmercer",
		})
		require.NoError(t, err)

		all, err := svc.ListApplications(ctx, ApplicationSearchParams{})
		require.NoError(t, err)
		require.Len(t, all, 2)

		// Name is a case-insensitive substring match.
		byName, err := svc.ListApplications(ctx, ApplicationSearchParams{Name: "MERCER"})
		require.NoError(t, err)
		require.Len(t, byName, 1)
		require.Equal(t, "Carol Mercer", byName[0].FullName)

		byLinkedIn, err := svc.ListApplications(ctx, ApplicationSearchParams{LinkedIn: "in/alice"})
		require.NoError(t, err)
		require.Len(t, byLinkedIn, 1)
		require.Equal(t, "Alice Example", byLinkedIn[0].FullName)

		// Student number matches exactly, never as a substring.
		byNumber, err := svc.ListApplications(ctx, ApplicationSearchParams{StudentNumber: "A00445566"})
		require.NoError(t, err)
		require.Len(t, byNumber, 1)
		byNumber, err = svc.ListApplications(ctx, ApplicationSearchParams{StudentNumber: "A0044"})
		require.NoError(t, err)
		require.Empty(t, byNumber)

		// Filters combine.
		combined, err := svc.ListApplications(ctx, ApplicationSearchParams{
			Name:          "carol",
			StudentNumber: "A00112233",
		})
		require.NoError(t, err)
		require.Empty(t, combined)

		none, err := svc.ListApplications(ctx, ApplicationSearchParams{Name: "nobody"})
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("no application yet", func(t *testing.T) {
		_, err := svc.GetOwnApplication(ctx, bob.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestHousekeeping_RemovesExpiredSessions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.registerUser(t, "student", "alice", "password123")

	stale := domain.Session{
		ID:        "stale-session",
		TokenHash: "stale-hash",
		UserID:    user.ID,
		Phase:     domain.SessionAuthenticated,
		Role:      domain.RoleStudent,
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
	}
	fresh := domain.Session{
		ID:        "fresh-session",
		TokenHash: "fresh-hash",
		UserID:    user.ID,
		Phase:     domain.SessionAuthenticated,
		Role:      domain.RoleStudent,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	require.NoError(t, env.Store.Sessions().CreateSession(ctx, stale))
	require.NoError(t, env.Store.Sessions().CreateSession(ctx, fresh))

	// The worker runs one cleanup on startup; Stop waits for it to finish.
	hk := NewHousekeepingService(env.Store, slog.Default(), time.Hour)
	hk.Start()
	hk.Stop()

	_, err := env.Store.Sessions().GetSessionByTokenHash(ctx, "stale-hash")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = env.Store.Sessions().GetSessionByTokenHash(ctx, "fresh-hash")
	require.NoError(t, err)
}
