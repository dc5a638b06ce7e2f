package like

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

type fakeLikeRepo struct {
	likes map[uuid.UUID]models.Like
}

func newFakeLikeRepo() *fakeLikeRepo {
	return &fakeLikeRepo{likes: map[uuid.UUID]models.Like{}}
}

func (r *fakeLikeRepo) Find(_ context.Context, likedBy uuid.UUID, target models.LikeTarget, targetID uuid.UUID) (*models.Like, error) {
	for _, like := range r.likes {
		if like.LikedBy == likedBy && like.Target == target && like.TargetID == targetID {
			copied := like
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeLikeRepo) Create(_ context.Context, like models.Like) (*models.Like, error) {
	like.ID = uuid.New()
	r.likes[like.ID] = like
	return &like, nil
}

func (r *fakeLikeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.likes, id)
	return nil
}

func (r *fakeLikeRepo) LikedVideos(_ context.Context, _ uuid.UUID) ([]models.VideoWithOwner, error) {
	return []models.VideoWithOwner{{Video: models.Video{Thumbnail: "thumbnails/x/thumb.png"}}}, nil
}

type fakeThumbnailer struct{}

func (fakeThumbnailer) ThumbnailURL(_ context.Context, objectKey string) (string, error) {
	return "https://media.local/" + objectKey, nil
}

func TestToggle_AddsThenRemoves(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := NewLikeService(logger.New("local"), repo, fakeThumbnailer{})
	userID := uuid.New()
	videoID := uuid.New()

	liked, err := svc.Toggle(context.Background(), userID, models.LikeTargetVideo, videoID)
	require.NoError(t, err)
	require.True(t, liked)
	require.Len(t, repo.likes, 1)

	liked, err = svc.Toggle(context.Background(), userID, models.LikeTargetVideo, videoID)
	require.NoError(t, err)
	require.False(t, liked)
	require.Empty(t, repo.likes)
}

func TestToggle_TargetsAreIndependent(t *testing.T) {
	repo := newFakeLikeRepo()
	svc := NewLikeService(logger.New("local"), repo, fakeThumbnailer{})
	userID := uuid.New()
	targetID := uuid.New()

	// Same id liked as a video and as a tweet are two separate likes.
	liked, err := svc.Toggle(context.Background(), userID, models.LikeTargetVideo, targetID)
	require.NoError(t, err)
	require.True(t, liked)

	liked, err = svc.Toggle(context.Background(), userID, models.LikeTargetTweet, targetID)
	require.NoError(t, err)
	require.True(t, liked)
	require.Len(t, repo.likes, 2)
}

func TestLikedVideos_PresignsThumbnails(t *testing.T) {
	svc := NewLikeService(logger.New("local"), newFakeLikeRepo(), fakeThumbnailer{})

	videos, err := svc.LikedVideos(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, videos, 1)
	require.Equal(t, "https://media.local/thumbnails/x/thumb.png", videos[0].Thumbnail)
}
