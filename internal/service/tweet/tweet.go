package tweet

import (
	"context"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
)

type TweetRepo interface {
	Create(ctx context.Context, tweet models.Tweet) (*models.Tweet, error)
	TweetByID(ctx context.Context, id uuid.UUID) (*models.Tweet, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Tweet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Tweet, error)
}

type TweetService struct {
	log  logger.Log
	repo TweetRepo
}

func NewTweetService(l logger.Log, repo TweetRepo) *TweetService {
	return &TweetService{log: l, repo: repo}
}

func (s *TweetService) Create(ctx context.Context, ownerID uuid.UUID, content string) (*models.Tweet, error) {
	return s.repo.Create(ctx, models.Tweet{
		OwnerID: ownerID,
		Content: content,
	})
}

func (s *TweetService) UserTweets(ctx context.Context, ownerID uuid.UUID) ([]models.Tweet, error) {
	return s.repo.ByOwner(ctx, ownerID)
}

func (s *TweetService) Update(ctx context.Context, ownerID, id uuid.UUID, content string) (*models.Tweet, error) {
	tweet, err := s.repo.TweetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tweet.OwnerID != ownerID {
		return nil, app_errors.ErrNotOwner
	}
	return s.repo.UpdateContent(ctx, id, content)
}

func (s *TweetService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tweet, err := s.repo.TweetByID(ctx, id)
	if err != nil {
		return err
	}
	if tweet.OwnerID != ownerID {
		return app_errors.ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
