package video

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

type fakeVideoRepo struct {
	videos  map[uuid.UUID]*models.Video
	watched map[uuid.UUID][]uuid.UUID
}

func newFakeVideoRepo() *fakeVideoRepo {
	return &fakeVideoRepo{
		videos:  map[uuid.UUID]*models.Video{},
		watched: map[uuid.UUID][]uuid.UUID{},
	}
}

func (r *fakeVideoRepo) Create(_ context.Context, video models.Video) (*models.Video, error) {
	stored := video
	r.videos[video.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakeVideoRepo) VideoByID(_ context.Context, id uuid.UUID) (*models.Video, error) {
	video, ok := r.videos[id]
	if !ok {
		return nil, app_errors.ErrVideoNotFound
	}
	copied := *video
	return &copied, nil
}

func (r *fakeVideoRepo) Update(_ context.Context, id uuid.UUID, title, description, thumbnail string) (*models.Video, error) {
	video, ok := r.videos[id]
	if !ok {
		return nil, app_errors.ErrVideoNotFound
	}
	if title != "" {
		video.Title = title
	}
	if description != "" {
		video.Description = description
	}
	if thumbnail != "" {
		video.Thumbnail = thumbnail
	}
	copied := *video
	return &copied, nil
}

func (r *fakeVideoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.videos[id]; !ok {
		return app_errors.ErrVideoNotFound
	}
	delete(r.videos, id)
	return nil
}

func (r *fakeVideoRepo) List(_ context.Context, listing models.VideoListing) ([]models.VideoWithOwner, error) {
	var out []models.VideoWithOwner
	for _, video := range r.videos {
		if listing.OwnerID != uuid.Nil {
			if video.OwnerID != listing.OwnerID {
				continue
			}
		} else if !video.IsPublished {
			continue
		}
		if len(listing.OnlyIDs) > 0 {
			found := false
			for _, id := range listing.OnlyIDs {
				if id == video.ID {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, models.VideoWithOwner{Video: *video})
	}
	return out, nil
}

func (r *fakeVideoRepo) SetPublished(_ context.Context, id uuid.UUID, published bool) (*models.Video, error) {
	video, ok := r.videos[id]
	if !ok {
		return nil, app_errors.ErrVideoNotFound
	}
	video.IsPublished = published
	copied := *video
	return &copied, nil
}

func (r *fakeVideoRepo) IncrementViews(_ context.Context, id uuid.UUID) error {
	video, ok := r.videos[id]
	if !ok {
		return app_errors.ErrVideoNotFound
	}
	video.Views++
	return nil
}

func (r *fakeVideoRepo) AddWatchEntry(_ context.Context, userID, videoID uuid.UUID) error {
	r.watched[userID] = append(r.watched[userID], videoID)
	return nil
}

func (r *fakeVideoRepo) WatchHistory(_ context.Context, userID uuid.UUID, _, _ int) ([]models.VideoWithOwner, error) {
	var out []models.VideoWithOwner
	for _, id := range r.watched[userID] {
		if video, ok := r.videos[id]; ok {
			out = append(out, models.VideoWithOwner{Video: *video})
		}
	}
	return out, nil
}

type fakeSearchRepo struct {
	indexed map[uuid.UUID]string
	results []uuid.UUID
}

func newFakeSearchRepo() *fakeSearchRepo {
	return &fakeSearchRepo{indexed: map[uuid.UUID]string{}}
}

func (s *fakeSearchRepo) Index(_ context.Context, video models.Video) error {
	s.indexed[video.ID] = video.Title
	return nil
}

func (s *fakeSearchRepo) Update(_ context.Context, video models.Video) error {
	s.indexed[video.ID] = video.Title
	return nil
}

func (s *fakeSearchRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(s.indexed, id)
	return nil
}

func (s *fakeSearchRepo) Search(_ context.Context, _ string, _ int) ([]uuid.UUID, error) {
	return s.results, nil
}

type fakeMediaStore struct {
	deleted []string
}

func (s *fakeMediaStore) UploadVideo(_ context.Context, videoID uuid.UUID, _ string, _ io.Reader, _ int64, _ string) (string, error) {
	return fmt.Sprintf("videos/%s/video.mp4", videoID), nil
}

func (s *fakeMediaStore) UploadThumbnail(_ context.Context, videoID uuid.UUID, filename string, _ io.Reader, _ int64, _ string) (string, error) {
	return fmt.Sprintf("thumbnails/%s/%s", videoID, filename), nil
}

func (s *fakeMediaStore) VideoURL(_ context.Context, objectKey string) (string, error) {
	return "https://media.local/" + objectKey, nil
}

func (s *fakeMediaStore) ThumbnailURL(_ context.Context, objectKey string) (string, error) {
	return "https://media.local/" + objectKey, nil
}

func (s *fakeMediaStore) Delete(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func newTestService(t *testing.T) (*VideoService, *fakeVideoRepo, *fakeSearchRepo, *fakeMediaStore) {
	t.Helper()
	repo := newFakeVideoRepo()
	search := newFakeSearchRepo()
	media := &fakeMediaStore{}
	svc := NewVideoService(logger.New("local"), repo, search, media)
	return svc, repo, search, media
}

func publishTestVideo(t *testing.T, svc *VideoService, ownerID uuid.UUID) *models.Video {
	t.Helper()
	video, err := svc.Publish(context.Background(), ownerID, "Test Video", "a description",
		models.FileUpload{Filename: "clip.mp4", Reader: strings.NewReader("bin")},
		models.FileUpload{Filename: "thumb.png", Reader: strings.NewReader("img")},
	)
	require.NoError(t, err)
	return video
}

func TestPublish_StoresMediaAndIndexes(t *testing.T) {
	svc, repo, search, _ := newTestService(t)
	ownerID := uuid.New()

	video := publishTestVideo(t, svc, ownerID)

	stored := repo.videos[video.ID]
	require.True(t, stored.IsPublished)
	require.Equal(t, fmt.Sprintf("videos/%s/video.mp4", video.ID), stored.VideoFile)

	// Returned video carries presigned URLs, not raw keys.
	require.True(t, strings.HasPrefix(video.VideoFile, "https://media.local/"))
	require.True(t, strings.HasPrefix(video.Thumbnail, "https://media.local/"))

	require.Equal(t, "Test Video", search.indexed[video.ID])
}

func TestVideo_CountsViewForOtherViewers(t *testing.T) {
	svc, repo, _, _ := newTestService(t)
	ownerID := uuid.New()
	viewerID := uuid.New()
	video := publishTestVideo(t, svc, ownerID)

	got, err := svc.Video(context.Background(), viewerID, video.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Views)
	require.Equal(t, []uuid.UUID{video.ID}, repo.watched[viewerID])

	// The owner's own views do not count and leave no history entry.
	got, err = svc.Video(context.Background(), ownerID, video.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.Views)
	require.Empty(t, repo.watched[ownerID])
}

func TestVideo_UnpublishedHiddenFromOthers(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ownerID := uuid.New()
	video := publishTestVideo(t, svc, ownerID)

	_, err := svc.TogglePublish(context.Background(), ownerID, video.ID)
	require.NoError(t, err)

	_, err = svc.Video(context.Background(), uuid.New(), video.ID)
	require.ErrorIs(t, err, app_errors.ErrVideoNotFound)

	got, err := svc.Video(context.Background(), ownerID, video.ID)
	require.NoError(t, err)
	require.False(t, got.IsPublished)
}

func TestUpdate_RequiresOwnership(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	video := publishTestVideo(t, svc, uuid.New())

	_, err := svc.Update(context.Background(), uuid.New(), video.ID, "New Title", "", nil)
	require.ErrorIs(t, err, app_errors.ErrNotOwner)
}

func TestUpdate_ReplacingThumbnailDeletesOldObject(t *testing.T) {
	svc, repo, _, media := newTestService(t)
	ownerID := uuid.New()
	video := publishTestVideo(t, svc, ownerID)
	oldKey := repo.videos[video.ID].Thumbnail

	_, err := svc.Update(context.Background(), ownerID, video.ID, "", "", &models.FileUpload{
		Filename: "thumb2.png",
		Reader:   strings.NewReader("img"),
	})
	require.NoError(t, err)
	require.Contains(t, media.deleted, oldKey)
	require.NotEqual(t, oldKey, repo.videos[video.ID].Thumbnail)
}

func TestDelete_RemovesRowObjectsAndIndexEntry(t *testing.T) {
	svc, repo, search, media := newTestService(t)
	ownerID := uuid.New()
	video := publishTestVideo(t, svc, ownerID)
	videoKey := repo.videos[video.ID].VideoFile
	thumbKey := repo.videos[video.ID].Thumbnail

	require.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), video.ID), app_errors.ErrNotOwner)

	require.NoError(t, svc.Delete(context.Background(), ownerID, video.ID))
	require.NotContains(t, repo.videos, video.ID)
	require.Contains(t, media.deleted, videoKey)
	require.Contains(t, media.deleted, thumbKey)
	require.NotContains(t, search.indexed, video.ID)
}

func TestAllVideos_QueryRestrictsToSearchMatches(t *testing.T) {
	svc, _, search, _ := newTestService(t)
	ownerID := uuid.New()
	first := publishTestVideo(t, svc, ownerID)
	publishTestVideo(t, svc, ownerID)

	search.results = []uuid.UUID{first.ID}

	videos, err := svc.AllVideos(context.Background(), models.VideoListing{Page: 1, Limit: 10}, "test")
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, first.ID, videos[0].ID)
}

func TestAllVideos_NoMatchesReturnsEmpty(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	publishTestVideo(t, svc, uuid.New())

	videos, err := svc.AllVideos(context.Background(), models.VideoListing{Page: 1, Limit: 10}, "nothing")
	require.NoError(t, err)
	require.Empty(t, videos)
}
