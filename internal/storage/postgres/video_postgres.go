package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VideoPostgres struct {
	db *pgxpool.Pool
}

func NewVideoPostgres(db *pgxpool.Pool) *VideoPostgres {
	return &VideoPostgres{db: db}
}

const videoColumns = `v.id, v.owner_id, v.title, v.description, v.video_file, v.thumbnail, v.duration, v.views, v.is_published, v.created_at`

// sortColumns whitelists client-supplied sort keys.
var sortColumns = map[string]string{
	"createdAt": "v.created_at",
	"views":     "v.views",
	"duration":  "v.duration",
	"title":     "v.title",
}

func scanVideo(row pgx.Row) (*models.Video, error) {
	var v models.Video
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoFile, &v.Thumbnail,
		&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrVideoNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *VideoPostgres) Create(ctx context.Context, video models.Video) (*models.Video, error) {
	query := `
		INSERT INTO videos AS v (id, owner_id, title, description, video_file, thumbnail, duration, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + videoColumns

	row := r.db.QueryRow(ctx, query,
		video.ID, video.OwnerID, video.Title, video.Description,
		video.VideoFile, video.Thumbnail, video.Duration, video.IsPublished,
	)
	return scanVideo(row)
}

func (r *VideoPostgres) VideoByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos v WHERE v.id = $1`
	return scanVideo(r.db.QueryRow(ctx, query, id))
}

// Update changes title/description and, when thumbnail is non-empty, the
// thumbnail key. Empty strings leave the stored value untouched.
func (r *VideoPostgres) Update(ctx context.Context, id uuid.UUID, title, description, thumbnail string) (*models.Video, error) {
	query := `
		UPDATE videos AS v SET
			title = COALESCE(NULLIF($2, ''), title),
			description = COALESCE(NULLIF($3, ''), description),
			thumbnail = COALESCE(NULLIF($4, ''), thumbnail)
		WHERE v.id = $1
		RETURNING ` + videoColumns

	return scanVideo(r.db.QueryRow(ctx, query, id, title, description, thumbnail))
}

func (r *VideoPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrVideoNotFound
	}
	return nil
}

func (r *VideoPostgres) SetPublished(ctx context.Context, id uuid.UUID, published bool) (*models.Video, error) {
	query := `UPDATE videos AS v SET is_published = $2 WHERE v.id = $1 RETURNING ` + videoColumns
	return scanVideo(r.db.QueryRow(ctx, query, id, published))
}

func (r *VideoPostgres) IncrementViews(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `UPDATE videos SET views = views + 1 WHERE id = $1`, id)
	return err
}

// List returns published videos joined with owner info. An OwnerID filter
// also includes that owner's unpublished videos (the "my videos" view).
func (r *VideoPostgres) List(ctx context.Context, listing models.VideoListing) ([]models.VideoWithOwner, error) {
	if listing.Page < 1 {
		listing.Page = 1
	}
	if listing.Limit < 1 || listing.Limit > 100 {
		listing.Limit = 10
	}

	conditions := []string{}
	args := []interface{}{}

	if listing.OwnerID != uuid.Nil {
		args = append(args, listing.OwnerID)
		conditions = append(conditions, fmt.Sprintf("v.owner_id = $%d", len(args)))
	} else {
		conditions = append(conditions, "v.is_published")
	}
	if len(listing.OnlyIDs) > 0 {
		args = append(args, listing.OnlyIDs)
		conditions = append(conditions, fmt.Sprintf("v.id = ANY($%d)", len(args)))
	}

	orderBy, ok := sortColumns[listing.SortBy]
	if !ok {
		orderBy = "v.created_at"
	}
	direction := "DESC"
	if listing.SortAsc {
		direction = "ASC"
	}

	args = append(args, listing.Limit, (listing.Page-1)*listing.Limit)
	query := fmt.Sprintf(`
		SELECT %s, u.username, u.full_name, u.avatar
		FROM videos v
		JOIN users u ON u.id = v.owner_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, videoColumns, strings.Join(conditions, " AND "), orderBy, direction, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVideosWithOwner(rows)
}

func (r *VideoPostgres) AddWatchEntry(ctx context.Context, userID, videoID uuid.UUID) error {
	query := `
		INSERT INTO watch_history (user_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, video_id) DO UPDATE SET watched_at = now()
	`
	_, err := r.db.Exec(ctx, query, userID, videoID)
	return err
}

func (r *VideoPostgres) WatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.VideoWithOwner, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := fmt.Sprintf(`
		SELECT %s, u.username, u.full_name, u.avatar
		FROM watch_history w
		JOIN videos v ON v.id = w.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE w.user_id = $1
		ORDER BY w.watched_at DESC
		LIMIT $2 OFFSET $3
	`, videoColumns)

	rows, err := r.db.Query(ctx, query, userID, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVideosWithOwner(rows)
}

func collectVideosWithOwner(rows pgx.Rows) ([]models.VideoWithOwner, error) {
	videos := []models.VideoWithOwner{}
	for rows.Next() {
		var v models.VideoWithOwner
		err := rows.Scan(
			&v.ID, &v.OwnerID, &v.Title, &v.Description, &v.VideoFile, &v.Thumbnail,
			&v.Duration, &v.Views, &v.IsPublished, &v.CreatedAt,
			&v.OwnerUsername, &v.OwnerFullName, &v.OwnerAvatar,
		)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}
