package video

import (
	"context"
	"io"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
)

type VideoRepo interface {
	Create(ctx context.Context, video models.Video) (*models.Video, error)
	VideoByID(ctx context.Context, id uuid.UUID) (*models.Video, error)
	Update(ctx context.Context, id uuid.UUID, title, description, thumbnail string) (*models.Video, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, listing models.VideoListing) ([]models.VideoWithOwner, error)
	SetPublished(ctx context.Context, id uuid.UUID, published bool) (*models.Video, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	AddWatchEntry(ctx context.Context, userID, videoID uuid.UUID) error
	WatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.VideoWithOwner, error)
}

type searchRepo interface {
	Index(ctx context.Context, video models.Video) error
	Update(ctx context.Context, video models.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, size int) ([]uuid.UUID, error)
}

type mediaStore interface {
	UploadVideo(ctx context.Context, videoID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
	UploadThumbnail(ctx context.Context, videoID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
	VideoURL(ctx context.Context, objectKey string) (string, error)
	ThumbnailURL(ctx context.Context, objectKey string) (string, error)
	Delete(ctx context.Context, objectKey string) error
}

type VideoService struct {
	log    logger.Log
	repo   VideoRepo
	search searchRepo
	media  mediaStore
}

func NewVideoService(l logger.Log, repo VideoRepo, search searchRepo, media mediaStore) *VideoService {
	return &VideoService{
		log:    l,
		repo:   repo,
		search: search,
		media:  media,
	}
}

// Publish uploads the media pair and creates the video record. New videos
// start published, matching the upload flow of the frontend.
func (s *VideoService) Publish(ctx context.Context, ownerID uuid.UUID, title, description string, videoFile, thumbnail models.FileUpload) (*models.Video, error) {
	id := uuid.New()

	videoKey, err := s.media.UploadVideo(ctx, id, videoFile.Filename, videoFile.Reader, videoFile.Size, videoFile.ContentType)
	if err != nil {
		return nil, err
	}
	thumbKey, err := s.media.UploadThumbnail(ctx, id, thumbnail.Filename, thumbnail.Reader, thumbnail.Size, thumbnail.ContentType)
	if err != nil {
		return nil, err
	}

	video := models.Video{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: description,
		VideoFile:   videoKey,
		Thumbnail:   thumbKey,
		IsPublished: true,
	}
	created, err := s.repo.Create(ctx, video)
	if err != nil {
		return nil, err
	}

	if err := s.search.Index(ctx, *created); err != nil {
		s.log.ErrorErr("failed to index video", err, "video_id", created.ID)
	}

	return s.withURLs(ctx, created), nil
}

// Video returns one video with presigned URLs. Viewing a published video
// bumps its view counter and appends it to the viewer's watch history.
func (s *VideoService) Video(ctx context.Context, viewerID, id uuid.UUID) (*models.Video, error) {
	video, err := s.repo.VideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !video.IsPublished && video.OwnerID != viewerID {
		return nil, app_errors.ErrVideoNotFound
	}

	if video.OwnerID != viewerID {
		if err := s.repo.IncrementViews(ctx, id); err != nil {
			s.log.ErrorErr("failed to increment views", err, "video_id", id)
		} else {
			video.Views++
		}
		if err := s.repo.AddWatchEntry(ctx, viewerID, id); err != nil {
			s.log.ErrorErr("failed to record watch history", err, "video_id", id)
		}
	}

	return s.withURLs(ctx, video), nil
}

// AllVideos lists published videos. A non-empty query goes through the
// search index first and the result set is restricted to the matched ids.
func (s *VideoService) AllVideos(ctx context.Context, listing models.VideoListing, query string) ([]models.VideoWithOwner, error) {
	if query != "" {
		ids, err := s.search.Search(ctx, query, listing.Limit*listing.Page)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []models.VideoWithOwner{}, nil
		}
		listing.OnlyIDs = ids
	}

	videos, err := s.repo.List(ctx, listing)
	if err != nil {
		return nil, err
	}
	return s.listingWithURLs(ctx, videos), nil
}

func (s *VideoService) Update(ctx context.Context, ownerID, id uuid.UUID, title, description string, thumbnail *models.FileUpload) (*models.Video, error) {
	video, err := s.repo.VideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != ownerID {
		return nil, app_errors.ErrNotOwner
	}

	thumbKey := ""
	if thumbnail != nil {
		thumbKey, err = s.media.UploadThumbnail(ctx, id, thumbnail.Filename, thumbnail.Reader, thumbnail.Size, thumbnail.ContentType)
		if err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, title, description, thumbKey)
	if err != nil {
		return nil, err
	}

	if thumbKey != "" && video.Thumbnail != "" && video.Thumbnail != thumbKey {
		if err := s.media.Delete(ctx, video.Thumbnail); err != nil {
			s.log.ErrorErr("failed to delete old thumbnail", err, "key", video.Thumbnail)
		}
	}

	if err := s.search.Update(ctx, *updated); err != nil {
		s.log.ErrorErr("failed to update search index", err, "video_id", id)
	}

	return s.withURLs(ctx, updated), nil
}

func (s *VideoService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	video, err := s.repo.VideoByID(ctx, id)
	if err != nil {
		return err
	}
	if video.OwnerID != ownerID {
		return app_errors.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, key := range []string{video.VideoFile, video.Thumbnail} {
		if key == "" {
			continue
		}
		if err := s.media.Delete(ctx, key); err != nil {
			s.log.ErrorErr("failed to delete media object", err, "key", key)
		}
	}

	if err := s.search.Delete(ctx, id); err != nil {
		s.log.ErrorErr("failed to delete from search index", err, "video_id", id)
	}

	return nil
}

func (s *VideoService) TogglePublish(ctx context.Context, ownerID, id uuid.UUID) (*models.Video, error) {
	video, err := s.repo.VideoByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if video.OwnerID != ownerID {
		return nil, app_errors.ErrNotOwner
	}
	updated, err := s.repo.SetPublished(ctx, id, !video.IsPublished)
	if err != nil {
		return nil, err
	}
	return s.withURLs(ctx, updated), nil
}

func (s *VideoService) WatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.VideoWithOwner, error) {
	videos, err := s.repo.WatchHistory(ctx, userID, page, limit)
	if err != nil {
		return nil, err
	}
	return s.listingWithURLs(ctx, videos), nil
}

// withURLs swaps object keys for presigned URLs on a single video.
func (s *VideoService) withURLs(ctx context.Context, video *models.Video) *models.Video {
	if video.VideoFile != "" {
		if url, err := s.media.VideoURL(ctx, video.VideoFile); err == nil {
			video.VideoFile = url
		}
	}
	if video.Thumbnail != "" {
		if url, err := s.media.ThumbnailURL(ctx, video.Thumbnail); err == nil {
			video.Thumbnail = url
		}
	}
	return video
}

func (s *VideoService) listingWithURLs(ctx context.Context, videos []models.VideoWithOwner) []models.VideoWithOwner {
	for i := range videos {
		if videos[i].Thumbnail != "" {
			if url, err := s.media.ThumbnailURL(ctx, videos[i].Thumbnail); err == nil {
				videos[i].Thumbnail = url
			}
		}
	}
	return videos
}
