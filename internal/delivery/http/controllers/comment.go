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

type CommentService interface {
	Add(ctx context.Context, ownerID, videoID uuid.UUID, content string) (*models.Comment, error)
	VideoComments(ctx context.Context, videoID uuid.UUID, page, limit int) ([]models.CommentWithOwner, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, content string) (*models.Comment, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type CommentHandler struct {
	comments CommentService
	log      logger.Log
}

func NewCommentHandler(l logger.Log, comments CommentService) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		log:      l,
	}
}

type commentRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *CommentHandler) Add(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	var input commentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), user.ID, videoID, input.Content)
	if err != nil {
		respondServiceError(c, h.log, err, "add comment")
		return
	}

	RespondOK(c, http.StatusCreated, comment, "comment added")
}

func (h *CommentHandler) VideoComments(c *gin.Context) {
	videoID, ok := uuidParam(c, "videoId")
	if !ok {
		return
	}

	page, limit := pageLimit(c)
	comments, err := h.comments.VideoComments(c.Request.Context(), videoID, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err, "list comments")
		return
	}

	RespondOK(c, http.StatusOK, comments, "comments fetched")
}

func (h *CommentHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	commentID, ok := uuidParam(c, "commentId")
	if !ok {
		return
	}

	var input commentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), user.ID, commentID, input.Content)
	if err != nil {
		respondServiceError(c, h.log, err, "update comment")
		return
	}

	RespondOK(c, http.StatusOK, comment, "comment updated")
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	commentID, ok := uuidParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), user.ID, commentID); err != nil {
		respondServiceError(c, h.log, err, "delete comment")
		return
	}

	RespondOK(c, http.StatusOK, nil, "comment deleted")
}
