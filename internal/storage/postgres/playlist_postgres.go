package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlaylistPostgres struct {
	db *pgxpool.Pool
}

func NewPlaylistPostgres(db *pgxpool.Pool) *PlaylistPostgres {
	return &PlaylistPostgres{db: db}
}

func scanPlaylist(row pgx.Row) (*models.Playlist, error) {
	var p models.Playlist
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, app_errors.ErrPlaylistNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *PlaylistPostgres) Create(ctx context.Context, playlist models.Playlist) (*models.Playlist, error) {
	query := `
		INSERT INTO playlists (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, name, description, created_at
	`
	return scanPlaylist(r.db.QueryRow(ctx, query, playlist.OwnerID, playlist.Name, playlist.Description))
}

func (r *PlaylistPostgres) PlaylistByID(ctx context.Context, id uuid.UUID) (*models.Playlist, error) {
	query := `SELECT id, owner_id, name, description, created_at FROM playlists WHERE id = $1`
	return scanPlaylist(r.db.QueryRow(ctx, query, id))
}

func (r *PlaylistPostgres) Update(ctx context.Context, id uuid.UUID, name, description string) (*models.Playlist, error) {
	query := `
		UPDATE playlists SET name = $2, description = $3
		WHERE id = $1
		RETURNING id, owner_id, name, description, created_at
	`
	return scanPlaylist(r.db.QueryRow(ctx, query, id, name, description))
}

func (r *PlaylistPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return app_errors.ErrPlaylistNotFound
	}
	return nil
}

func (r *PlaylistPostgres) ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error) {
	query := `
		SELECT id, owner_id, name, description, created_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	playlists := []models.Playlist{}
	for rows.Next() {
		var p models.Playlist
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.CreatedAt); err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

// AddVideo is idempotent: re-adding an existing member is a no-op.
func (r *PlaylistPostgres) AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	query := `
		INSERT INTO playlist_videos (playlist_id, video_id)
		VALUES ($1, $2)
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, playlistID, videoID)
	return err
}

func (r *PlaylistPostgres) RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error {
	_, err := r.db.Exec(ctx,
		`DELETE FROM playlist_videos WHERE playlist_id = $1 AND video_id = $2`,
		playlistID, videoID,
	)
	return err
}

func (r *PlaylistPostgres) Videos(ctx context.Context, playlistID uuid.UUID) ([]models.VideoWithOwner, error) {
	query := fmt.Sprintf(`
		SELECT %s, u.username, u.full_name, u.avatar
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		JOIN users u ON u.id = v.owner_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at
	`, videoColumns)

	rows, err := r.db.Query(ctx, query, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectVideosWithOwner(rows)
}
