package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cosahq/cosa/internal/cosa/domain"
	"github.com/cosahq/cosa/internal/cosa/store"
)

type sessionsRepo struct {
	q querier
}

const sessionColumns = `id, token_hash, user_id, role, phase, attempts,
	expires_at, created_at, updated_at`

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO sessions (
			id, token_hash, user_id, role, phase, attempts,
			expires_at, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.TokenHash, s.UserID, string(s.Role), string(s.Phase),
		s.Attempts, s.ExpiresAt.UTC(), now, now,
	)
	return mapConstraint(err)
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, tokenHash string) (domain.Session, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE token_hash = ?`, tokenHash)
	return scanSession(row)
}

// PromoteSession is the single forward transition of the session state
// machine. The WHERE clause pins phase = pending so concurrent promotions
// (or a racing logout) can never regress an authenticated session.
func (r *sessionsRepo) PromoteSession(
	ctx context.Context,
	tokenHash string,
	role domain.Role,
	expiresAt time.Time,
) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE sessions
		SET phase = ?, role = ?, expires_at = ?, updated_at = ?
		WHERE token_hash = ? AND phase = ?`,
		string(domain.SessionAuthenticated), string(role), expiresAt.UTC(),
		time.Now().UTC(), tokenHash, string(domain.SessionPendingSecondFactor),
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *sessionsRepo) IncrementSessionAttempts(ctx context.Context, tokenHash string) (domain.Session, error) {
	_, err := r.q.ExecContext(ctx, `
		UPDATE sessions SET attempts = attempts + 1, updated_at = ?
		WHERE token_hash = ?`,
		time.Now().UTC(), tokenHash,
	)
	if err != nil {
		return domain.Session{}, err
	}
	return r.GetSessionByTokenHash(ctx, tokenHash)
}

func (r *sessionsRepo) DeleteSession(ctx context.Context, tokenHash string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = ?`, tokenHash)
	return err
}

func (r *sessionsRepo) DeleteUserSessions(ctx context.Context, userID string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = ?`, userID)
	return err
}

func (r *sessionsRepo) DeleteExpiredSessions(ctx context.Context) error {
	_, err := r.q.ExecContext(ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`, time.Now().UTC())
	return err
}

func scanSession(row *sql.Row) (domain.Session, error) {
	var (
		s     domain.Session
		role  string
		phase string
	)
	err := row.Scan(
		&s.ID, &s.TokenHash, &s.UserID, &role, &phase, &s.Attempts,
		&s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	s.Role = domain.Role(role)
	s.Phase = domain.SessionPhase(phase)
	return s, nil
}
