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

type CommentPostgres struct {
	db *pgxpool.Pool
}

func NewCommentPostgres(db *pgxpool.Pool) *CommentPostgres {
	return &CommentPostgres{db: db}
}

func scanComment(row pgx.Row) (*models.Comment, error) {
	var c models.Comment
	err := row.Scan(&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CommentPostgres) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	query := `
		INSERT INTO comments (video_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, video_id, owner_id, content, created_at
	`
	return scanComment(r.db.QueryRow(ctx, query, comment.VideoID, comment.OwnerID, comment.Content))
}

func (r *CommentPostgres) CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	query := `SELECT id, video_id, owner_id, content, created_at FROM comments WHERE id = $1`
	return scanComment(r.db.QueryRow(ctx, query, id))
}

func (r *CommentPostgres) UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error) {
	query := `
		UPDATE comments SET content = $2
		WHERE id = $1
		RETURNING id, video_id, owner_id, content, created_at
	`
	return scanComment(r.db.QueryRow(ctx, query, id, content))
}

func (r *CommentPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrCommentNotFound
	}
	return nil
}

func (r *CommentPostgres) ByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]models.CommentWithOwner, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := `
		SELECT c.id, c.video_id, c.owner_id, c.content, c.created_at,
		       u.username, u.full_name, u.avatar
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, videoID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.CommentWithOwner{}
	for rows.Next() {
		var c models.CommentWithOwner
		err := rows.Scan(
			&c.ID, &c.VideoID, &c.OwnerID, &c.Content, &c.CreatedAt,
			&c.OwnerUsername, &c.OwnerFullName, &c.OwnerAvatar,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
