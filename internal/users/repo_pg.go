package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, password_hash, created_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, password_hash, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, userID))
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	const query = `
SELECT id, email, password_hash, created_at
FROM users
WHERE lower(email) = lower($1)
LIMIT 1`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *PGRepo) scanUser(row *sql.Row) (User, error) {
	var user User
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

func (r *PGRepo) SaveRefreshToken(ctx context.Context, token RefreshToken) error {
	const query = `
INSERT INTO refresh_tokens (id, user_id, token, expires_at, created_at)
VALUES ($1, $2, $3, $4, now())`
	_, err := r.DB.ExecContext(ctx, query, token.ID, token.UserID, token.Token, token.ExpiresAt)
	return err
}

func (r *PGRepo) GetRefreshToken(ctx context.Context, userID, token string) (RefreshToken, error) {
	const query = `
SELECT id, user_id, token, expires_at, created_at
FROM refresh_tokens
WHERE token = $1 AND user_id = $2
LIMIT 1`
	var rec RefreshToken
	err := r.DB.QueryRowContext(ctx, query, token, userID).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.Token,
		&rec.ExpiresAt,
		&rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RefreshToken{}, ErrTokenMissing
		}
		return RefreshToken{}, err
	}
	return rec, nil
}

func (r *PGRepo) DeleteRefreshTokens(ctx context.Context, userID, token string) error {
	if token == "" {
		_, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1`, userID)
		return err
	}
	_, err := r.DB.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE user_id = $1 AND token = $2`, userID, token)
	return err
}
