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

type SubscriptionService interface {
	Toggle(ctx context.Context, subscriber, channel uuid.UUID) (bool, error)
	Subscribers(ctx context.Context, channel uuid.UUID) ([]models.PublicUser, error)
	SubscribedChannels(ctx context.Context, subscriber uuid.UUID) ([]models.PublicUser, error)
}

type SubscriptionHandler struct {
	subscriptions SubscriptionService
	log           logger.Log
}

func NewSubscriptionHandler(l logger.Log, subscriptions SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		log:           l,
	}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}
	channelID, ok := uuidParam(c, "channelId")
	if !ok {
		return
	}

	subscribed, err := h.subscriptions.Toggle(c.Request.Context(), user.ID, channelID)
	if err != nil {
		respondServiceError(c, h.log, err, "toggle subscription")
		return
	}

	msg := "unsubscribed"
	if subscribed {
		msg = "subscribed"
	}
	RespondOK(c, http.StatusOK, gin.H{"subscribed": subscribed}, msg)
}

func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	channelID, ok := uuidParam(c, "channelId")
	if !ok {
		return
	}

	users, err := h.subscriptions.Subscribers(c.Request.Context(), channelID)
	if err != nil {
		respondServiceError(c, h.log, err, "list subscribers")
		return
	}

	RespondOK(c, http.StatusOK, users, "subscribers fetched")
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	subscriberID, ok := uuidParam(c, "subscriberId")
	if !ok {
		return
	}

	users, err := h.subscriptions.SubscribedChannels(c.Request.Context(), subscriberID)
	if err != nil {
		respondServiceError(c, h.log, err, "list subscribed channels")
		return
	}

	RespondOK(c, http.StatusOK, users, "subscribed channels fetched")
}
