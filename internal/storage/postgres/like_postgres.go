package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LikePostgres struct {
	db *pgxpool.Pool
}

func NewLikePostgres(db *pgxpool.Pool) *LikePostgres {
	return &LikePostgres{db: db}
}

// Find returns nil without error when the like does not exist; the toggle
// flow treats absence as a normal outcome.
func (r *LikePostgres) Find(ctx context.Context, likedBy uuid.UUID, target models.LikeTarget, targetID uuid.UUID) (*models.Like, error) {
	query := `
		SELECT id, liked_by, target, target_id, created_at
		FROM likes
		WHERE liked_by = $1 AND target = $2 AND target_id = $3
	`
	var like models.Like
	err := r.db.QueryRow(ctx, query, likedBy, target, targetID).Scan(
		&like.ID, &like.LikedBy, &like.Target, &like.TargetID, &like.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *LikePostgres) Create(ctx context.Context, like models.Like) (*models.Like, error) {
	query := `
		INSERT INTO likes (liked_by, target, target_id)
		VALUES ($1, $2, $3)
		RETURNING id, liked_by, target, target_id, created_at
	`
	var created models.Like
	err := r.db.QueryRow(ctx, query, like.LikedBy, like.Target, like.TargetID).Scan(
		&created.ID, &created.LikedBy, &created.Target, &created.TargetID, &created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert like: %w", err)
	}
	return &created, nil
}

func (r *LikePostgres) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM likes WHERE id = $1`, id)
	return err
}

func (r *LikePostgres) LikedVideos(ctx context.Context, likedBy uuid.UUID) ([]models.VideoWithOwner, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.username, u.full_name, u.avatar
		FROM likes l
		JOIN videos v ON v.id = l.target_id
		JOIN users u ON u.id = v.owner_id
		WHERE l.liked_by = $1 AND l.target = $2
		ORDER BY l.created_at DESC
	`, videoColumns)

	rows, err := r.db.Query(ctx, query, likedBy, models.LikeTargetVideo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVideosWithOwner(rows)
}
