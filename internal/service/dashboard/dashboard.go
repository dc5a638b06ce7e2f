package dashboard

import (
	"context"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
)

type StatsRepo interface {
	ChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error)
}

type videoLister interface {
	List(ctx context.Context, listing models.VideoListing) ([]models.VideoWithOwner, error)
}

type thumbnailer interface {
	ThumbnailURL(ctx context.Context, objectKey string) (string, error)
}

type DashboardService struct {
	log    logger.Log
	stats  StatsRepo
	videos videoLister
	media  thumbnailer
}

func NewDashboardService(l logger.Log, stats StatsRepo, videos videoLister, media thumbnailer) *DashboardService {
	return &DashboardService{
		log:    l,
		stats:  stats,
		videos: videos,
		media:  media,
	}
}

func (s *DashboardService) ChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error) {
	return s.stats.ChannelStats(ctx, channelID)
}

// ChannelVideos lists the channel's own videos, drafts included.
func (s *DashboardService) ChannelVideos(ctx context.Context, channelID uuid.UUID, page, limit int) ([]models.VideoWithOwner, error) {
	videos, err := s.videos.List(ctx, models.VideoListing{
		Page:    page,
		Limit:   limit,
		OwnerID: channelID,
	})
	if err != nil {
		return nil, err
	}
	for i := range videos {
		if videos[i].Thumbnail == "" {
			continue
		}
		if url, err := s.media.ThumbnailURL(ctx, videos[i].Thumbnail); err == nil {
			videos[i].Thumbnail = url
		}
	}
	return videos, nil
}
