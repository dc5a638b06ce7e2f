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

type LikeService interface {
	Toggle(ctx context.Context, likedBy uuid.UUID, target models.LikeTarget, targetID uuid.UUID) (bool, error)
	LikedVideos(ctx context.Context, likedBy uuid.UUID) ([]models.VideoWithOwner, error)
}

type LikeHandler struct {
	likes LikeService
	log   logger.Log
}

func NewLikeHandler(l logger.Log, likes LikeService) *LikeHandler {
	return &LikeHandler{
		likes: likes,
		log:   l,
	}
}

func (h *LikeHandler) toggle(c *gin.Context, target models.LikeTarget, param string) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	targetID, ok := uuidParam(c, param)
	if !ok {
		return
	}

	liked, err := h.likes.Toggle(c.Request.Context(), user.ID, target, targetID)
	if err != nil {
		respondServiceError(c, h.log, err, "toggle like")
		return
	}

	msg := "like removed"
	if liked {
		msg = "like added"
	}
	RespondOK(c, http.StatusOK, gin.H{"liked": liked}, msg)
}

func (h *LikeHandler) ToggleVideoLike(c *gin.Context) {
	h.toggle(c, models.LikeTargetVideo, "videoId")
}

func (h *LikeHandler) ToggleCommentLike(c *gin.Context) {
	h.toggle(c, models.LikeTargetComment, "commentId")
}

func (h *LikeHandler) ToggleTweetLike(c *gin.Context) {
	h.toggle(c, models.LikeTargetTweet, "tweetId")
}

func (h *LikeHandler) LikedVideos(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	videos, err := h.likes.LikedVideos(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, h.log, err, "list liked videos")
		return
	}

	RespondOK(c, http.StatusOK, videos, "liked videos fetched")
}
