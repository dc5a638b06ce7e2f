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

type TweetService interface {
	Create(ctx context.Context, ownerID uuid.UUID, content string) (*models.Tweet, error)
	UserTweets(ctx context.Context, ownerID uuid.UUID) ([]models.Tweet, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, content string) (*models.Tweet, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type TweetHandler struct {
	tweets TweetService
	log    logger.Log
}

func NewTweetHandler(l logger.Log, tweets TweetService) *TweetHandler {
	return &TweetHandler{
		tweets: tweets,
		log:    l,
	}
}

type tweetRequest struct {
	Content string `json:"content" binding:"required"`
}

func (h *TweetHandler) Create(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	var input tweetRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	tweet, err := h.tweets.Create(c.Request.Context(), user.ID, input.Content)
	if err != nil {
		respondServiceError(c, h.log, err, "create tweet")
		return
	}

	RespondOK(c, http.StatusCreated, tweet, "tweet created")
}

func (h *TweetHandler) UserTweets(c *gin.Context) {
	ownerID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	tweets, err := h.tweets.UserTweets(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, h.log, err, "list tweets")
		return
	}

	RespondOK(c, http.StatusOK, tweets, "tweets fetched")
}

func (h *TweetHandler) Update(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	tweetID, ok := uuidParam(c, "tweetId")
	if !ok {
		return
	}

	var input tweetRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	tweet, err := h.tweets.Update(c.Request.Context(), user.ID, tweetID, input.Content)
	if err != nil {
		respondServiceError(c, h.log, err, "update tweet")
		return
	}

	RespondOK(c, http.StatusOK, tweet, "tweet updated")
}

func (h *TweetHandler) Delete(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	tweetID, ok := uuidParam(c, "tweetId")
	if !ok {
		return
	}

	if err := h.tweets.Delete(c.Request.Context(), user.ID, tweetID); err != nil {
		respondServiceError(c, h.log, err, "delete tweet")
		return
	}

	RespondOK(c, http.StatusOK, nil, "tweet deleted")
}
