package playlist

import (
	"context"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
)

type PlaylistRepo interface {
	Create(ctx context.Context, playlist models.Playlist) (*models.Playlist, error)
	PlaylistByID(ctx context.Context, id uuid.UUID) (*models.Playlist, error)
	Update(ctx context.Context, id uuid.UUID, name, description string) (*models.Playlist, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error)
	AddVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	RemoveVideo(ctx context.Context, playlistID, videoID uuid.UUID) error
	Videos(ctx context.Context, playlistID uuid.UUID) ([]models.VideoWithOwner, error)
}

type videoRepo interface {
	VideoByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
}

type PlaylistService struct {
	log    logger.Log
	repo   PlaylistRepo
	videos videoRepo
}

func NewPlaylistService(l logger.Log, repo PlaylistRepo, videos videoRepo) *PlaylistService {
	return &PlaylistService{
		log:    l,
		repo:   repo,
		videos: videos,
	}
}

func (s *PlaylistService) Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.Playlist, error) {
	return s.repo.Create(ctx, models.Playlist{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
	})
}

func (s *PlaylistService) UserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error) {
	return s.repo.ByOwner(ctx, ownerID)
}

func (s *PlaylistService) Playlist(ctx context.Context, id uuid.UUID) (*models.PlaylistWithVideos, error) {
	playlist, err := s.repo.PlaylistByID(ctx, id)
	if err != nil {
		return nil, err
	}
	videos, err := s.repo.Videos(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.PlaylistWithVideos{
		Playlist: *playlist,
		Videos:   videos,
	}, nil
}

func (s *PlaylistService) AddVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*models.PlaylistWithVideos, error) {
	if err := s.requireOwner(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}
	if _, err := s.videos.VideoByID(ctx, videoID); err != nil {
		return nil, err
	}
	if err := s.repo.AddVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.Playlist(ctx, playlistID)
}

func (s *PlaylistService) RemoveVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*models.PlaylistWithVideos, error) {
	if err := s.requireOwner(ctx, ownerID, playlistID); err != nil {
		return nil, err
	}
	if err := s.repo.RemoveVideo(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.Playlist(ctx, playlistID)
}

func (s *PlaylistService) Update(ctx context.Context, ownerID, id uuid.UUID, name, description string) (*models.Playlist, error) {
	if err := s.requireOwner(ctx, ownerID, id); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, name, description)
}

func (s *PlaylistService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	if err := s.requireOwner(ctx, ownerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *PlaylistService) requireOwner(ctx context.Context, ownerID, playlistID uuid.UUID) error {
	playlist, err := s.repo.PlaylistByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerID != ownerID {
		return app_errors.ErrNotOwner
	}
	return nil
}
