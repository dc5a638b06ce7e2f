package playlist

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

type fakePlaylistRepo struct {
	playlists map[uuid.UUID]*models.Playlist
	members   map[uuid.UUID][]uuid.UUID
}

func newFakePlaylistRepo() *fakePlaylistRepo {
	return &fakePlaylistRepo{
		playlists: map[uuid.UUID]*models.Playlist{},
		members:   map[uuid.UUID][]uuid.UUID{},
	}
}

func (r *fakePlaylistRepo) Create(_ context.Context, playlist models.Playlist) (*models.Playlist, error) {
	playlist.ID = uuid.New()
	stored := playlist
	r.playlists[playlist.ID] = &stored
	copied := stored
	return &copied, nil
}

func (r *fakePlaylistRepo) PlaylistByID(_ context.Context, id uuid.UUID) (*models.Playlist, error) {
	playlist, ok := r.playlists[id]
	if !ok {
		return nil, app_errors.ErrPlaylistNotFound
	}
	copied := *playlist
	return &copied, nil
}

func (r *fakePlaylistRepo) Update(_ context.Context, id uuid.UUID, name, description string) (*models.Playlist, error) {
	playlist, ok := r.playlists[id]
	if !ok {
		return nil, app_errors.ErrPlaylistNotFound
	}
	if name != "" {
		playlist.Name = name
	}
	if description != "" {
		playlist.Description = description
	}
	copied := *playlist
	return &copied, nil
}

func (r *fakePlaylistRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.playlists, id)
	delete(r.members, id)
	return nil
}

func (r *fakePlaylistRepo) ByOwner(_ context.Context, ownerID uuid.UUID) ([]models.Playlist, error) {
	var out []models.Playlist
	for _, playlist := range r.playlists {
		if playlist.OwnerID == ownerID {
			out = append(out, *playlist)
		}
	}
	return out, nil
}

func (r *fakePlaylistRepo) AddVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	for _, id := range r.members[playlistID] {
		if id == videoID {
			return nil
		}
	}
	r.members[playlistID] = append(r.members[playlistID], videoID)
	return nil
}

func (r *fakePlaylistRepo) RemoveVideo(_ context.Context, playlistID, videoID uuid.UUID) error {
	ids := r.members[playlistID]
	for i, id := range ids {
		if id == videoID {
			r.members[playlistID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakePlaylistRepo) Videos(_ context.Context, playlistID uuid.UUID) ([]models.VideoWithOwner, error) {
	out := make([]models.VideoWithOwner, 0, len(r.members[playlistID]))
	for _, id := range r.members[playlistID] {
		out = append(out, models.VideoWithOwner{Video: models.Video{ID: id}})
	}
	return out, nil
}

type fakeVideoRepo struct {
	known map[uuid.UUID]bool
}

func (r *fakeVideoRepo) VideoByID(_ context.Context, id uuid.UUID) (*models.Video, error) {
	if !r.known[id] {
		return nil, app_errors.ErrVideoNotFound
	}
	return &models.Video{ID: id}, nil
}

func newTestService() (*PlaylistService, *fakePlaylistRepo, *fakeVideoRepo) {
	repo := newFakePlaylistRepo()
	videos := &fakeVideoRepo{known: map[uuid.UUID]bool{}}
	svc := NewPlaylistService(logger.New("local"), repo, videos)
	return svc, repo, videos
}

func TestAddVideo_OwnerOnly(t *testing.T) {
	svc, _, videos := newTestService()
	ownerID := uuid.New()
	videoID := uuid.New()
	videos.known[videoID] = true

	playlist, err := svc.Create(context.Background(), ownerID, "Watch later", "")
	require.NoError(t, err)

	_, err = svc.AddVideo(context.Background(), uuid.New(), playlist.ID, videoID)
	require.ErrorIs(t, err, app_errors.ErrNotOwner)

	detail, err := svc.AddVideo(context.Background(), ownerID, playlist.ID, videoID)
	require.NoError(t, err)
	require.Len(t, detail.Videos, 1)
	require.Equal(t, videoID, detail.Videos[0].ID)
}

func TestAddVideo_UnknownVideo(t *testing.T) {
	svc, _, _ := newTestService()
	ownerID := uuid.New()

	playlist, err := svc.Create(context.Background(), ownerID, "Watch later", "")
	require.NoError(t, err)

	_, err = svc.AddVideo(context.Background(), ownerID, playlist.ID, uuid.New())
	require.ErrorIs(t, err, app_errors.ErrVideoNotFound)
}

func TestRemoveVideo_Idempotent(t *testing.T) {
	svc, _, videos := newTestService()
	ownerID := uuid.New()
	videoID := uuid.New()
	videos.known[videoID] = true

	playlist, err := svc.Create(context.Background(), ownerID, "Watch later", "")
	require.NoError(t, err)
	_, err = svc.AddVideo(context.Background(), ownerID, playlist.ID, videoID)
	require.NoError(t, err)

	detail, err := svc.RemoveVideo(context.Background(), ownerID, playlist.ID, videoID)
	require.NoError(t, err)
	require.Empty(t, detail.Videos)

	// Removing again is not an error.
	_, err = svc.RemoveVideo(context.Background(), ownerID, playlist.ID, videoID)
	require.NoError(t, err)
}

func TestDelete_OwnerOnly(t *testing.T) {
	svc, repo, _ := newTestService()
	ownerID := uuid.New()

	playlist, err := svc.Create(context.Background(), ownerID, "Watch later", "")
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), uuid.New(), playlist.ID), app_errors.ErrNotOwner)
	require.NoError(t, svc.Delete(context.Background(), ownerID, playlist.ID))
	require.NotContains(t, repo.playlists, playlist.ID)
}
