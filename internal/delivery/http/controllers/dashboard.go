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

type DashboardService interface {
	ChannelStats(ctx context.Context, channelID uuid.UUID) (*models.ChannelStats, error)
	ChannelVideos(ctx context.Context, channelID uuid.UUID, page, limit int) ([]models.VideoWithOwner, error)
}

type DashboardHandler struct {
	dashboard DashboardService
	log       logger.Log
}

func NewDashboardHandler(l logger.Log, dashboard DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		log:       l,
	}
}

// Stats reports the authenticated channel's aggregate counters.
func (h *DashboardHandler) Stats(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	stats, err := h.dashboard.ChannelStats(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, h.log, err, "fetch channel stats")
		return
	}

	RespondOK(c, http.StatusOK, stats, "channel stats fetched")
}

// Videos lists all of the authenticated channel's videos, drafts included.
func (h *DashboardHandler) Videos(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	page, limit := pageLimit(c)
	videos, err := h.dashboard.ChannelVideos(c.Request.Context(), user.ID, page, limit)
	if err != nil {
		respondServiceError(c, h.log, err, "fetch channel videos")
		return
	}

	RespondOK(c, http.StatusOK, videos, "channel videos fetched")
}
