package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserPostgres struct {
	db *pgxpool.Pool
}

func NewUserPostgres(db *pgxpool.Pool) *UserPostgres {
	return &UserPostgres{db: db}
}

const userColumns = `id, username, email, full_name, password, avatar, cover_image, refresh_token, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.FullName, &user.Password,
		&user.Avatar, &user.CoverImage, &user.RefreshToken, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserPostgres) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	query := `
		INSERT INTO users (id, username, email, full_name, password, avatar, cover_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	row := r.db.QueryRow(ctx, query,
		user.ID, user.Username, user.Email, user.FullName, user.Password,
		user.Avatar, user.CoverImage,
	)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, app_errors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return created, nil
}

func (r *UserPostgres) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserPostgres) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(r.db.QueryRow(ctx, query, username))
}

// UserByLogin matches the login form, where the same field takes a username
// or an email.
func (r *UserPostgres) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1 OR email = $1`
	return scanUser(r.db.QueryRow(ctx, query, login))
}

func (r *UserPostgres) UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error {
	query := `UPDATE users SET refresh_token = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrUserNotFound
	}
	return nil
}

// RotateRefreshToken replaces the stored refresh token only when the caller
// still holds the current one. The row-level atomicity of the single UPDATE
// serializes concurrent renewals: exactly one caller wins, the rest see
// ErrTokenReused.
func (r *UserPostgres) RotateRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) error {
	query := `UPDATE users SET refresh_token = $3 WHERE id = $1 AND refresh_token = $2`
	tag, err := r.db.Exec(ctx, query, id, oldToken, newToken)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrTokenReused
	}
	return nil
}

func (r *UserPostgres) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password = $2 WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrUserNotFound
	}
	return nil
}

// UpdateAccount changes full name and/or email. Empty strings leave the
// stored value untouched, so a partial update never blanks the other field.
func (r *UserPostgres) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) (*models.User, error) {
	query := `
		UPDATE users SET
			full_name = COALESCE(NULLIF($2, ''), full_name),
			email = COALESCE(NULLIF($3, ''), email)
		WHERE id = $1
		RETURNING ` + userColumns

	updated, err := scanUser(r.db.QueryRow(ctx, query, id, fullName, email))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, app_errors.ErrUserExists
		}
		return nil, err
	}
	return updated, nil
}

func (r *UserPostgres) UpdateAvatar(ctx context.Context, id uuid.UUID, objectKey string) (string, error) {
	return r.swapImageKey(ctx, id, "avatar", objectKey)
}

func (r *UserPostgres) UpdateCoverImage(ctx context.Context, id uuid.UUID, objectKey string) (string, error) {
	return r.swapImageKey(ctx, id, "cover_image", objectKey)
}

// swapImageKey updates one image column and hands back the previous key so
// the caller can delete the stale object. column is one of two fixed names,
// never user input.
func (r *UserPostgres) swapImageKey(ctx context.Context, id uuid.UUID, column, objectKey string) (oldKey string, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	selectQuery := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 FOR UPDATE`, column)
	err = tx.QueryRow(ctx, selectQuery, id).Scan(&oldKey)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", app_errors.ErrUserNotFound
		}
		return "", err
	}

	updateQuery := fmt.Sprintf(`UPDATE users SET %s = $2 WHERE id = $1`, column)
	if _, err = tx.Exec(ctx, updateQuery, id, objectKey); err != nil {
		return "", err
	}

	if err = tx.Commit(ctx); err != nil {
		return "", err
	}
	return oldKey, nil
}
