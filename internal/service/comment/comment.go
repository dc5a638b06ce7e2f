package comment

import (
	"context"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
)

type CommentRepo interface {
	Create(ctx context.Context, comment models.Comment) (*models.Comment, error)
	CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	UpdateContent(ctx context.Context, id uuid.UUID, content string) (*models.Comment, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ByVideo(ctx context.Context, videoID uuid.UUID, page, limit int) ([]models.CommentWithOwner, error)
}

type videoRepo interface {
	VideoByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
}

type CommentService struct {
	log    logger.Log
	repo   CommentRepo
	videos videoRepo
}

func NewCommentService(l logger.Log, repo CommentRepo, videos videoRepo) *CommentService {
	return &CommentService{
		log:    l,
		repo:   repo,
		videos: videos,
	}
}

func (s *CommentService) Add(ctx context.Context, ownerID, videoID uuid.UUID, content string) (*models.Comment, error) {
	if _, err := s.videos.VideoByID(ctx, videoID); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, models.Comment{
		VideoID: videoID,
		OwnerID: ownerID,
		Content: content,
	})
}

func (s *CommentService) VideoComments(ctx context.Context, videoID uuid.UUID, page, limit int) ([]models.CommentWithOwner, error) {
	return s.repo.ByVideo(ctx, videoID, page, limit)
}

func (s *CommentService) Update(ctx context.Context, ownerID, id uuid.UUID, content string) (*models.Comment, error) {
	comment, err := s.repo.CommentByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.OwnerID != ownerID {
		return nil, app_errors.ErrNotOwner
	}
	return s.repo.UpdateContent(ctx, id, content)
}

func (s *CommentService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	comment, err := s.repo.CommentByID(ctx, id)
	if err != nil {
		return err
	}
	if comment.OwnerID != ownerID {
		return app_errors.ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
