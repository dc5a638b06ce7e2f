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

type VideoService interface {
	Publish(ctx context.Context, ownerID uuid.UUID, title, description string, videoFile, thumbnail models.FileUpload) (*models.Video, error)
	Video(ctx context.Context, viewerID, id uuid.UUID) (*models.Video, error)
	AllVideos(ctx context.Context, listing models.VideoListing, query string) ([]models.VideoWithOwner, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, title, description string, thumbnail *models.FileUpload) (*models.Video, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	TogglePublish(ctx context.Context, ownerID, id uuid.UUID) (*models.Video, error)
	WatchHistory(ctx context.Context, userID uuid.UUID, page, limit int) ([]models.VideoWithOwner, error)
}

type VideoHandler struct {
	videos VideoService
	log    logger.Log
}

func NewVideoHandler(l logger.Log, videos VideoService) *VideoHandler {
	return &VideoHandler{
		videos: videos,
		log:    l,
	}
}

func (h *VideoHandler) Publish(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")
	if title == "" || description == "" {
		RespondError(c, http.StatusBadRequest, "title and description are required")
		return
	}

	videoFile, closeVideo, err := formFile(c, "videoFile")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "video file is required")
		return
	}
	defer closeVideo()

	thumbnail, closeThumb, err := formFile(c, "thumbnail")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "thumbnail file is required")
		return
	}
	defer closeThumb()

	video, err := h.videos.Publish(c.Request.Context(), user.ID, title, description, videoFile, thumbnail)
	if err != nil {
		respondServiceError(c, h.log, err, "publish video")
		return
	}

	RespondOK(c, http.StatusCreated, video, "video published successfully")
}

// List serves the video feed: paginated, sortable, optionally filtered by
// owner and by a full text query.
func (h *VideoHandler) List(c *gin.Context) {
	page, limit := pageLimit(c)
	listing := models.VideoListing{
		Page:    page,
		Limit:   limit,
		SortBy:  c.DefaultQuery("sortBy", "createdAt"),
		SortAsc: c.DefaultQuery("sortType", "desc") == "asc",
	}
	if rawOwner := c.Query("userId"); rawOwner != "" {
		ownerID, err := uuid.Parse(rawOwner)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid userId")
			return
		}
		listing.OwnerID = ownerID
	}

	videos, err := h.videos.AllVideos(c.Request.Context(), listing, c.Query("query"))
	if err != nil {
		respondServiceError(c, h.log, err, "list videos")
		return
	}

	RespondOK(c, http.StatusOK, videos, "videos fetched")
}

func (h *VideoHandler) VideoByID(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videos.Video(c.Request.Context(), user.ID, videoID)
	if err != nil {
		respondServiceError(c, h.log, err, "fetch video")
		return
	}

	RespondOK(c, http.StatusOK, video, "video fetched")
}

func (h *VideoHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	title := c.PostForm("title")
	description := c.PostForm("description")

	var thumbnail *models.FileUpload
	if upload, closeThumb, err := formFile(c, "thumbnail"); err == nil {
		defer closeThumb()
		thumbnail = &upload
	}

	if title == "" && description == "" && thumbnail == nil {
		RespondError(c, http.StatusBadRequest, "nothing to update")
		return
	}

	video, err := h.videos.Update(c.Request.Context(), user.ID, videoID, title, description, thumbnail)
	if err != nil {
		respondServiceError(c, h.log, err, "update video")
		return
	}

	RespondOK(c, http.StatusOK, video, "video updated")
}

func (h *VideoHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	if err := h.videos.Delete(c.Request.Context(), user.ID, videoID); err != nil {
		respondServiceError(c, h.log, err, "delete video")
		return
	}

	RespondOK(c, http.StatusOK, nil, "video deleted")
}

func (h *VideoHandler) TogglePublish(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	video, err := h.videos.TogglePublish(c.Request.Context(), user.ID, videoID)
	if err != nil {
		respondServiceError(c, h.log, err, "toggle publish")
		return
	}

	RespondOK(c, http.StatusOK, video, "publish status toggled")
}

func (h *VideoHandler) WatchHistory(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	page, limit := pageLimit(c)
	videos, err := h.videos.WatchHistory(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err, "fetch watch history")
		return
	}

	RespondOK(c, http.StatusOK, videos, "watch history fetched")
}
