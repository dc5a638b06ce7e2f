package postgres

import (
	"context"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DashboardPostgres struct {
	db *pgxpool.Pool
}

func NewDashboardPostgres(db *pgxpool.Pool) *DashboardPostgres {
	return &DashboardPostgres{db: db}
}

// ChannelStats gathers the dashboard aggregates for one channel in a single
// round trip.
func (r *DashboardPostgres) ChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error) {
	query := `
		SELECT
			(SELECT count(*) FROM videos WHERE owner_id = $1),
			(SELECT coalesce(sum(views), 0) FROM videos WHERE owner_id = $1),
			(SELECT count(*) FROM subscriptions WHERE channel = $1),
			(SELECT count(*)
			 FROM likes l
			 JOIN videos v ON v.id = l.target_id
			 WHERE l.target = 'video' AND v.owner_id = $1)
	`
	var stats models.ChannelStats
	err := r.db.QueryRow(ctx, query, channelID).Scan(
		&stats.TotalVideos, &stats.TotalViews, &stats.TotalSubscribers, &stats.TotalLikes,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
