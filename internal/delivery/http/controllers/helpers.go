package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

// statusFor maps service sentinels to HTTP statuses. Anything unknown is a
// server error and the caller is expected to log it.
func statusFor(err error) int {
	switch {
	case errors.Is(err, app_errors.ErrUnauthenticated),
		errors.Is(err, app_errors.ErrInvalidToken),
		errors.Is(err, app_errors.ErrTokenExpired),
		errors.Is(err, app_errors.ErrTokenReused),
		errors.Is(err, app_errors.ErrIncorrectPassword):
		return http.StatusUnauthorized
	case errors.Is(err, app_errors.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, app_errors.ErrUserNotFound),
		errors.Is(err, app_errors.ErrVideoNotFound),
		errors.Is(err, app_errors.ErrCommentNotFound),
		errors.Is(err, app_errors.ErrTweetNotFound),
		errors.Is(err, app_errors.ErrPlaylistNotFound),
		errors.Is(err, app_errors.ErrChannelNotFound):
		return http.StatusNotFound
	case errors.Is(err, app_errors.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, app_errors.ErrSelfSubscription),
		errors.Is(err, app_errors.ErrAvatarRequired),
		errors.Is(err, app_errors.ErrNotMedia),
		errors.Is(err, app_errors.ErrFileSize):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondServiceError(c *gin.Context, l logger.Log, err error, context string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		l.ErrorErr(context, err)
		RespondError(c, status, "internal server error")
		return
	}
	RespondError(c, status, err.Error())
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pageLimit reads page/limit query params with the listing defaults.
func pageLimit(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	return page, limit
}

// formFile opens one multipart file and wraps it for the storage layer. The
// returned closer must be called once the upload finished.
func formFile(c *gin.Context, field string) (models.FileUpload, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		return models.FileUpload{}, nil, err
	}
	f, err := header.Open()
	if err != nil {
		return models.FileUpload{}, nil, err
	}
	upload := models.FileUpload{
		Filename:    header.Filename,
		Reader:      f,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
	}
	return upload, func() { _ = f.Close() }, nil
}
