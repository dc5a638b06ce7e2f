package postgres

import (
	"context"
	"errors"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TweetPostgres struct {
	db *pgxpool.Pool
}

func NewTweetPostgres(db *pgxpool.Pool) *TweetPostgres {
	return &TweetPostgres{db: db}
}

func scanTweet(row pgx.Row) (*models.Tweet, error) {
	var t models.Tweet
	err := row.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrTweetNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TweetPostgres) Create(ctx context.Context, tweet models.Tweet) (*models.Tweet, error) {
	query := `
		INSERT INTO tweets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, owner_id, content, created_at, updated_at
	`
	return scanTweet(r.db.QueryRow(ctx, query, tweet.OwnerID, tweet.Content))
}

func (r *TweetPostgres) TweetByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error) {
	query := `SELECT id, owner_id, content, created_at, updated_at FROM tweets WHERE id = $1`
	return scanTweet(r.db.QueryRow(ctx, query, id))
}

func (r *TweetPostgres) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Tweet, error) {
	query := `
		UPDATE tweets SET content = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, owner_id, content, created_at, updated_at
	`
	return scanTweet(r.db.QueryRow(ctx, query, id, content))
}

func (r *TweetPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tweets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrTweetNotFound
	}
	return nil
}

func (r *TweetPostgres) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tweet, error) {
	query := `
		SELECT id, owner_id, content, created_at, updated_at
		FROM tweets
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tweets := []models.Tweet{}
	for rows.Next() {
		var t models.Tweet
		if err := rows.Scan(&t.ID, &t.OwnerID, &t.Content, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		tweets = append(tweets, t)
	}
	return tweets, rows.Err()
}
