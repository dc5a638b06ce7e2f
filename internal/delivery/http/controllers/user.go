package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, avatar models.FileUpload, cover *models.FileUpload) (*models.User, error)
	LoginUser(ctx context.Context, login, password string) (*models.User, *models.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	RefreshTokens(ctx context.Context, presented string) (*models.TokenPair, error)
	VerifyAccessToken(ctx context.Context, token string) (*models.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
	User(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, userID uuid.UUID, file models.FileUpload) (*models.User, error)
	UpdateCoverImage(ctx context.Context, userID uuid.UUID, file models.FileUpload) (*models.User, error)
	TokenTTLs() (access, refresh time.Duration)
}

type ChannelService interface {
	ChannelProfile(ctx context.Context, viewerID uuid.UUID, username string) (*models.ChannelProfile, error)
}

type UserHandler struct {
	auth     AuthService
	channels ChannelService
	log      logger.Log
}

func NewUserHandler(l logger.Log, auth AuthService, channels ChannelService) *UserHandler {
	return &UserHandler{
		auth:     auth,
		channels: channels,
		log:      l,
	}
}

func (h *UserHandler) setAuthCookies(c *gin.Context, pair *models.TokenPair) {
	accessTTL, refreshTTL := h.auth.TokenTTLs()
	c.SetCookie("accessToken", pair.AccessToken, int(accessTTL.Seconds()), "/", "", true, true)
	c.SetCookie("refreshToken", pair.RefreshToken, int(refreshTTL.Seconds()), "/", "", true, true)
}

func clearAuthCookies(c *gin.Context) {
	c.SetCookie("accessToken", "", -1, "/", "", true, true)
	c.SetCookie("refreshToken", "", -1, "/", "", true, true)
}

func (h *UserHandler) Register(c *gin.Context) {
	fullName := c.PostForm("fullName")
	email := c.PostForm("email")
	username := c.PostForm("username")
	password := c.PostForm("password")
	if fullName == "" || email == "" || username == "" || password == "" {
		RespondError(c, http.StatusBadRequest, "all fields are required")
		return
	}

	avatar, closeAvatar, err := formFile(c, "avatar")
	if err != nil {
		RespondError(c, http.StatusBadRequest, app_errors.ErrAvatarRequired.Error())
		return
	}
	defer closeAvatar()

	var cover *models.FileUpload
	if upload, closeCover, err := formFile(c, "coverImage"); err == nil {
		defer closeCover()
		cover = &upload
	}

	user, err := h.auth.RegisterUser(c.Request.Context(), models.User{
		Username: username,
		Email:    email,
		FullName: fullName,
		Password: password,
	}, avatar, cover)
	if err != nil {
		respondServiceError(c, h.log, err, "register user")
		return
	}

	RespondOK(c, http.StatusCreated, user.Public(), "user registered successfully")
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

func (h *UserHandler) Login(c *gin.Context) {
	var input loginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	login := input.Username
	if login == "" {
		login = input.Email
	}
	if login == "" {
		RespondError(c, http.StatusBadRequest, "username or email is required")
		return
	}

	user, pair, err := h.auth.LoginUser(c.Request.Context(), login, input.Password)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) || errors.Is(err, app_errors.ErrIncorrectPassword) {
			RespondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		respondServiceError(c, h.log, err, "login user")
		return
	}

	h.setAuthCookies(c, pair)
	RespondOK(c, http.StatusOK, gin.H{
		"user":         user.Public(),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "user logged in successfully")
}

func (h *UserHandler) Logout(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	if err := h.auth.Logout(c.Request.Context(), user.ID); err != nil {
		respondServiceError(c, h.log, err, "logout user")
		return
	}

	clearAuthCookies(c)
	RespondOK(c, http.StatusOK, nil, "user logged out")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshAccessToken exchanges a live refresh token for a new pair. The
// token comes from the refreshToken cookie or the request body.
func (h *UserHandler) RefreshAccessToken(c *gin.Context) {
	token, _ := c.Cookie("refreshToken")
	if token == "" {
		var input refreshRequest
		_ = c.ShouldBindJSON(&input)
		token = input.RefreshToken
	}

	pair, err := h.auth.RefreshTokens(c.Request.Context(), token)
	if err != nil {
		respondServiceError(c, h.log, err, "refresh tokens")
		return
	}

	h.setAuthCookies(c, pair)
	RespondOK(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, "access token refreshed")
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	var input changePasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.auth.ChangePassword(c.Request.Context(), user.ID, input.OldPassword, input.NewPassword); err != nil {
		respondServiceError(c, h.log, err, "change password")
		return
	}

	RespondOK(c, http.StatusOK, nil, "password changed successfully")
}

func (h *UserHandler) Me(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	// Re-read through the service so image keys come back presigned.
	fresh, err := h.auth.User(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, h.log, err, "fetch current user")
		return
	}

	RespondOK(c, http.StatusOK, fresh.Public(), "current user fetched")
}

type updateAccountRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	var input updateAccountRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if input.FullName == "" && input.Email == "" {
		RespondError(c, http.StatusBadRequest, "fullName or email is required")
		return
	}

	updated, err := h.auth.UpdateAccount(c.Request.Context(), user.ID, input.FullName, input.Email)
	if err != nil {
		respondServiceError(c, h.log, err, "update account")
		return
	}

	RespondOK(c, http.StatusOK, updated.Public(), "account details updated")
}

func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	upload, closeFile, err := formFile(c, "avatar")
	if err != nil {
		RespondError(c, http.StatusBadRequest, app_errors.ErrAvatarRequired.Error())
		return
	}
	defer closeFile()

	updated, err := h.auth.UpdateAvatar(c.Request.Context(), user.ID, upload)
	if err != nil {
		respondServiceError(c, h.log, err, "update avatar")
		return
	}

	RespondOK(c, http.StatusOK, updated.Public(), "avatar updated")
}

func (h *UserHandler) UpdateCoverImage(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	upload, closeFile, err := formFile(c, "coverImage")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "cover image file is required")
		return
	}
	defer closeFile()

	updated, err := h.auth.UpdateCoverImage(c.Request.Context(), user.ID, upload)
	if err != nil {
		respondServiceError(c, h.log, err, "update cover image")
		return
	}

	RespondOK(c, http.StatusOK, updated.Public(), "cover image updated")
}

func (h *UserHandler) Channel(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, app_errors.ErrUnauthenticated.Error())
		return
	}

	username := c.Param("username")
	if username == "" {
		RespondError(c, http.StatusBadRequest, "username is required")
		return
	}

	profile, err := h.channels.ChannelProfile(c.Request.Context(), user.ID, username)
	if err != nil {
		respondServiceError(c, h.log, err, "fetch channel profile")
		return
	}

	RespondOK(c, http.StatusOK, profile, "channel profile fetched")
}
