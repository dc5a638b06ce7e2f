package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

// ClientIDCtx is the gin context key under which AuthMiddleware stores the
// verified *models.User.
const ClientIDCtx = "client_id"

// AuthMiddleware gates a route on a valid access token, taken from the
// accessToken cookie or the Authorization header. On success the resolved
// user is attached to the context.
func (h *UserHandler) AuthMiddleware(c *gin.Context) {
	token, err := c.Cookie("accessToken")
	if err != nil || token == "" {
		authHeader := c.GetHeader("Authorization")
		if after, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			token = after
		}
	}
	if token == "" {
		AbortError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	user, err := h.auth.VerifyAccessToken(c.Request.Context(), token)
	if err != nil {
		h.log.Info("access token rejected", logger.Err(err))
		AbortError(c, http.StatusUnauthorized, err.Error())
		return
	}

	// Handlers never need the credential fields.
	user.Password = ""
	user.RefreshToken = ""

	c.Set(ClientIDCtx, user)
	c.Next()
}

// currentUser pulls the authenticated user attached by AuthMiddleware.
func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get(ClientIDCtx)
	if !exists {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

func LoggingMiddleware(l logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		path := c.Request.URL.Path
		if rawQuery := c.Request.URL.RawQuery; rawQuery != "" {
			path = fmt.Sprintf("%s?%s", path, rawQuery)
		}

		l.Info(fmt.Sprintf("%s %s", c.Request.Method, path),
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		)

		for _, ginErr := range c.Errors {
			l.ErrorErr("HTTP request error", ginErr.Err,
				"status", c.Writer.Status(),
				"method", c.Request.Method,
				"path", path,
			)
		}
	}
}
