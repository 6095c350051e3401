package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, role, username, email, name, student_id, password_hash,
	active, two_factor_enabled, two_factor_secret, two_factor_setup_done,
	created_at, updated_at`

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO users (
			id, role, username, email, name, student_id, password_hash,
			active, two_factor_enabled, two_factor_secret, two_factor_setup_done,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, string(u.Role), u.Username, u.Email, u.Name,
		mapOptionalString(&u.StudentID), u.PasswordHash,
		u.Active, u.TwoFactorEnabled, mapOptionalString(u.TwoFactorSecret),
		u.TwoFactorSetupDone, now, now,
	)
	return mapConstraint(err)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByLogin(ctx context.Context, usernameOrEmail string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = ? OR email = ?`,
		usernameOrEmail, usernameOrEmail)
	return scanUser(row)
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *usersRepo) SetActive(ctx context.Context, userID string, active bool) error {
	return r.exec(ctx,
		`UPDATE users SET active = ?, updated_at = ? WHERE id = ?`,
		active, time.Now().UTC(), userID)
}

func (r *usersRepo) SetRole(ctx context.Context, userID string, role domain.Role) error {
	return r.exec(ctx,
		`UPDATE users SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), time.Now().UTC(), userID)
}

func (r *usersRepo) UpdateTwoFactorSecret(ctx context.Context, userID string, secret string) error {
	return r.exec(ctx,
		`UPDATE users SET two_factor_secret = ?, updated_at = ? WHERE id = ?`,
		secret, time.Now().UTC(), userID)
}

func (r *usersRepo) SetTwoFactorEnabled(ctx context.Context, userID string, enabled bool) error {
	return r.exec(ctx,
		`UPDATE users SET two_factor_enabled = ?, updated_at = ? WHERE id = ?`,
		enabled, time.Now().UTC(), userID)
}

func (r *usersRepo) MarkTwoFactorSetupDone(ctx context.Context, userID string) error {
	return r.exec(ctx,
		`UPDATE users SET two_factor_setup_done = 1, updated_at = ? WHERE id = ?`,
		time.Now().UTC(), userID)
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	return r.exec(ctx, `DELETE FROM users WHERE id = ?`, userID)
}

// exec runs a mutation that must touch exactly one existing row.
func (r *usersRepo) exec(ctx context.Context, query string, args ...any) error {
	res, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		return mapConstraint(err)
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u         domain.User
		role      string
		studentID sql.NullString
		secret    sql.NullString
	)
	err := row.Scan(
		&u.ID, &role, &u.Username, &u.Email, &u.Name, &studentID,
		&u.PasswordHash, &u.Active, &u.TwoFactorEnabled, &secret,
		&u.TwoFactorSetupDone, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Role = domain.Role(role)
	if studentID.Valid {
		u.StudentID = studentID.String
	}
	u.TwoFactorSecret = mapNullString(secret)
	return u, nil
}
