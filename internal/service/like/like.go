package like

import (
	"context"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
)

type LikeRepo interface {
	Find(ctx context.Context, likedBy uuid.UUID, target models.LikeTarget, targetID uuid.UUID) (*models.Like, error)
	Create(ctx context.Context, like models.Like) (*models.Like, error)
	Delete(ctx context.Context, id uuid.UUID) error
	LikedVideos(ctx context.Context, likedBy uuid.UUID) ([]models.VideoWithOwner, error)
}

type thumbnailer interface {
	ThumbnailURL(ctx context.Context, objectKey string) (string, error)
}

type LikeService struct {
	log   logger.Log
	repo  LikeRepo
	media thumbnailer
}

func NewLikeService(l logger.Log, repo LikeRepo, media thumbnailer) *LikeService {
	return &LikeService{log: l, repo: repo, media: media}
}

// Toggle flips a like: creates it when absent, removes it when present.
// Returns true when the entity ends up liked.
func (s *LikeService) Toggle(ctx context.Context, likedBy uuid.UUID, target models.LikeTarget, targetID uuid.UUID) (bool, error) {
	existing, err := s.repo.Find(ctx, likedBy, target, targetID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.repo.Delete(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	_, err = s.repo.Create(ctx, models.Like{
		LikedBy:  likedBy,
		Target:   target,
		TargetID: targetID,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *LikeService) LikedVideos(ctx context.Context, likedBy uuid.UUID) ([]models.VideoWithOwner, error) {
	videos, err := s.repo.LikedVideos(ctx, likedBy)
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
