package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
)

type applicationsRepo struct {
	q querier
}

const applicationColumns = `id, student_id, full_name, address, date_of_birth,
	student_number, student_year, linkedin, status, created_at, updated_at`

func (r *applicationsRepo) CreateApplication(ctx context.Context, a domain.CoopApplication) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO coop_applications (
			id, student_id, full_name, address, date_of_birth,
			student_number, student_year, linkedin, status,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.StudentID, a.FullName, a.Address, a.DateOfBirth.UTC(),
		a.StudentNumber, a.StudentYear, a.LinkedIn, string(a.Status),
		now, now,
	)
	return mapConstraint(err)
}

func (r *applicationsRepo) GetApplicationByID(ctx context.Context, id string) (domain.CoopApplication, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM coop_applications WHERE id = ?`, id)
	return scanApplication(row)
}

func (r *applicationsRepo) GetApplicationByStudent(ctx context.Context, studentID string) (domain.CoopApplication, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+applicationColumns+` FROM coop_applications WHERE student_id = ?`,
		studentID)
	return scanApplication(row)
}

func (r *applicationsRepo) ListApplications(
	ctx context.Context,
	filter store.ApplicationFilter,
) ([]domain.CoopApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM coop_applications`

	var (
		conds []string
		args  []any
	)
	if filter.Name != "" {
		conds = append(conds, `instr(lower(full_name), lower(?)) > 0`)
		args = append(args, filter.Name)
	}
	if filter.LinkedIn != "" {
		conds = append(conds, `instr(lower(linkedin), lower(?)) > 0`)
		args = append(args, filter.LinkedIn)
	}
	if filter.StudentNumber != "" {
		conds = append(conds, `student_number = ?`)
		args = append(args, filter.StudentNumber)
	}
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, ` AND `)
	}
	query += ` ORDER BY created_at ASC, id ASC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.CoopApplication
	for rows.Next() {
		var (
			a      domain.CoopApplication
			status string
		)
		if err := rows.Scan(
			&a.ID, &a.StudentID, &a.FullName, &a.Address, &a.DateOfBirth,
			&a.StudentNumber, &a.StudentYear, &a.LinkedIn, &status,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Status = domain.ApplicationStatus(status)
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func (r *applicationsRepo) UpdateApplicationStatus(
	ctx context.Context,
	id string,
	status domain.ApplicationStatus,
) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE coop_applications SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().UTC(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}

func scanApplication(row *sql.Row) (domain.CoopApplication, error) {
	var (
		a      domain.CoopApplication
		status string
	)
	err := row.Scan(
		&a.ID, &a.StudentID, &a.FullName, &a.Address, &a.DateOfBirth,
		&a.StudentNumber, &a.StudentYear, &a.LinkedIn, &status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return domain.CoopApplication{}, mapNotFound(err)
	}
	a.Status = domain.ApplicationStatus(status)
	return a, nil
}
