package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

type PlaylistService interface {
	Create(ctx context.Context, ownerID uuid.UUID, name, description string) (*models.Playlist, error)
	UserPlaylists(ctx context.Context, ownerID uuid.UUID) ([]models.Playlist, error)
	Playlist(ctx context.Context, id uuid.UUID) (*models.PlaylistWithVideos, error)
	AddVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*models.PlaylistWithVideos, error)
	RemoveVideo(ctx context.Context, ownerID, playlistID, videoID uuid.UUID) (*models.PlaylistWithVideos, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, name, description string) (*models.Playlist, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type PlaylistHandler struct {
	playlists PlaylistService
	log       logger.Log
}

func NewPlaylistHandler(l logger.Log, playlists PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{
		playlists: playlists,
		log:       l,
	}
}

type playlistRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *PlaylistHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	var input playlistRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	playlist, err := h.playlists.Create(c.Request.Context(), user.ID, input.Name, input.Description)
	if err != nil {
		respondServiceError(c, h.log, err, "create playlist")
		return
	}

	RespondOK(c, http.StatusCreated, playlist, "playlist created")
}

func (h *PlaylistHandler) UserPlaylists(c *gin.Context) {
	ownerID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	playlists, err := h.playlists.UserPlaylists(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, h.log, err, "list playlists")
		return
	}

	RespondOK(c, http.StatusOK, playlists, "playlists fetched")
}

func (h *PlaylistHandler) PlaylistByID(c *gin.Context) {
	playlistID, ok := uuidParam(c, "playlistId")
	if !ok {
		return
	}

	playlist, err := h.playlists.Playlist(c.Request.Context(), playlistID)
	if err != nil {
		respondServiceError(c, h.log, err, "fetch playlist")
		return
	}

	RespondOK(c, http.StatusOK, playlist, "playlist fetched")
}

func (h *PlaylistHandler) AddVideo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	playlistID, ok := uuidParam(c, "playlistId")
	if !ok {
		return
	}
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	playlist, err := h.playlists.AddVideo(c.Request.Context(), user.ID, playlistID, videoID)
	if err != nil {
		respondServiceError(c, h.log, err, "add video to playlist")
		return
	}

	RespondOK(c, http.StatusOK, playlist, "video added to playlist")
}

func (h *PlaylistHandler) RemoveVideo(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	playlistID, ok := uuidParam(c, "playlistId")
	if !ok {
		return
	}
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	playlist, err := h.playlists.RemoveVideo(c.Request.Context(), user.ID, playlistID, videoID)
	if err != nil {
		respondServiceError(c, h.log, err, "remove video from playlist")
		return
	}

	RespondOK(c, http.StatusOK, playlist, "video removed from playlist")
}

func (h *PlaylistHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	playlistID, ok := uuidParam(c, "playlistId")
	if !ok {
		return
	}

	var input playlistRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	playlist, err := h.playlists.Update(c.Request.Context(), user.ID, playlistID, input.Name, input.Description)
	if err != nil {
		respondServiceError(c, h.log, err, "update playlist")
		return
	}

	RespondOK(c, http.StatusOK, playlist, "playlist updated")
}

func (h *PlaylistHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	playlistID, ok := uuidParam(c, "playlistId")
	if !ok {
		return
	}

	if err := h.playlists.Delete(c.Request.Context(), user.ID, playlistID); err != nil {
		respondServiceError(c, h.log, err, "delete playlist")
		return
	}

	RespondOK(c, http.StatusOK, nil, "playlist deleted")
}
