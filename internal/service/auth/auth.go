package auth

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UserByLogin(ctx context.Context, login string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error
	RotateRefreshToken(ctx context.Context, id uuid.UUID, oldToken, newToken string) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) (*models.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, objectKey string) (oldKey string, err error)
	UpdateCoverImage(ctx context.Context, id uuid.UUID, objectKey string) (oldKey string, err error)
}

type imageStore interface {
	UploadAvatar(ctx context.Context, userID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
	UploadCover(ctx context.Context, userID uuid.UUID, filename string, reader io.Reader, size int64, contentType string) (string, error)
	URL(ctx context.Context, objectKey string) (string, error)
	Delete(ctx context.Context, objectKey string) error
}

type AuthService struct {
	log        logger.Log
	jwtManager *JWTManager
	userRepo   UserRepo
	images     imageStore
}

func NewAuthService(l logger.Log, manager *JWTManager, users UserRepo, images imageStore) *AuthService {
	return &AuthService{
		log:        l,
		jwtManager: manager,
		userRepo:   users,
		images:     images,
	}
}

// TokenTTLs reports the configured token lifetimes, used for cookie expiry.
func (u *AuthService) TokenTTLs() (access, refresh time.Duration) {
	return u.jwtManager.AccessTTL(), u.jwtManager.RefreshTTL()
}

// IssueTokens mints a token pair for the user and persists the refresh token
// on the user record, replacing whatever was stored before. Login and renewal
// both go through here.
func (u *AuthService) IssueTokens(ctx context.Context, userID uuid.UUID) (*models.TokenPair, error) {
	pair, err := u.jwtManager.GenerateTokenPair(userID)
	if err != nil {
		return nil, err
	}
	if err := u.userRepo.UpdateRefreshToken(ctx, userID, pair.RefreshToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// RefreshTokens exchanges a refresh token for a new pair. Exactly one refresh
// token is live per user: the presented token must equal the stored one, and
// the rotation is a conditional update so concurrent renewals admit a single
// winner.
func (u *AuthService) RefreshTokens(ctx context.Context, presented string) (*models.TokenPair, error) {
	if presented == "" {
		return nil, app_errors.ErrUnauthenticated
	}

	claims, err := u.jwtManager.RefreshClaims(presented)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			return nil, app_errors.ErrInvalidToken
		}
		return nil, err
	}

	if user.RefreshToken != presented {
		return nil, app_errors.ErrTokenReused
	}

	pair, err := u.jwtManager.GenerateTokenPair(user.ID)
	if err != nil {
		return nil, err
	}
	if err := u.userRepo.RotateRefreshToken(ctx, user.ID, presented, pair.RefreshToken); err != nil {
		return nil, err
	}
	return pair, nil
}

// VerifyAccessToken resolves an access token to the user it names. Pure gate:
// it never writes anything.
func (u *AuthService) VerifyAccessToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, app_errors.ErrUnauthenticated
	}
	claims, err := u.jwtManager.AccessClaims(token)
	if err != nil {
		return nil, err
	}
	user, err := u.userRepo.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, app_errors.ErrUserNotFound) {
			return nil, app_errors.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

func (u *AuthService) LoginUser(ctx context.Context, login, password string) (*models.User, *models.TokenPair, error) {
	user, err := u.userRepo.UserByLogin(ctx, login)
	if err != nil {
		return nil, nil, err
	}

	if !checkPasswordHash(password, user.Password) {
		return nil, nil, app_errors.ErrIncorrectPassword
	}

	pair, err := u.IssueTokens(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return u.withImageURLs(ctx, user), pair, nil
}

// Logout clears the stored refresh token, so any outstanding refresh token
// for the user fails renewal from now on.
func (u *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	return u.userRepo.UpdateRefreshToken(ctx, userID, "")
}

func (u *AuthService) RegisterUser(ctx context.Context, user models.User, avatar models.FileUpload, cover *models.FileUpload) (*models.User, error) {
	if len(user.Password) > 16 || len(user.Password) < 6 {
		return nil, app_errors.ErrIncorrectPassword
	}
	// Usernames are stored lowercased so lookups stay case-insensitive.
	user.Username = strings.ToLower(user.Username)

	hash, err := hashPassword(user.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash
	user.ID = uuid.New()

	avatarKey, err := u.images.UploadAvatar(ctx, user.ID, avatar.Filename, avatar.Reader, avatar.Size, avatar.ContentType)
	if err != nil {
		return nil, err
	}
	user.Avatar = avatarKey

	if cover != nil {
		coverKey, err := u.images.UploadCover(ctx, user.ID, cover.Filename, cover.Reader, cover.Size, cover.ContentType)
		if err != nil {
			return nil, err
		}
		user.CoverImage = coverKey
	}

	created, err := u.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	return u.withImageURLs(ctx, created), nil
}

// ChangePassword verifies the old password, stores the new hash and clears
// the stored refresh token: a password change invalidates every session.
func (u *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	user, err := u.userRepo.UserByID(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPasswordHash(oldPassword, user.Password) {
		return app_errors.ErrIncorrectPassword
	}
	if len(newPassword) > 16 || len(newPassword) < 6 {
		return app_errors.ErrIncorrectPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := u.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}
	return u.userRepo.UpdateRefreshToken(ctx, userID, "")
}

func (u *AuthService) User(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := u.userRepo.UserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.withImageURLs(ctx, user), nil
}

// withImageURLs swaps stored object keys for presigned URLs so clients can
// render the images directly.
func (u *AuthService) withImageURLs(ctx context.Context, user *models.User) *models.User {
	if user.Avatar != "" {
		if url, err := u.images.URL(ctx, user.Avatar); err == nil {
			user.Avatar = url
		}
	}
	if user.CoverImage != "" {
		if url, err := u.images.URL(ctx, user.CoverImage); err == nil {
			user.CoverImage = url
		}
	}
	return user
}

func (u *AuthService) UpdateAccount(ctx context.Context, userID uuid.UUID, fullName, email string) (*models.User, error) {
	updated, err := u.userRepo.UpdateAccount(ctx, userID, fullName, email)
	if err != nil {
		return nil, err
	}
	return u.withImageURLs(ctx, updated), nil
}

func (u *AuthService) UpdateAvatar(ctx context.Context, userID uuid.UUID, file models.FileUpload) (*models.User, error) {
	key, err := u.images.UploadAvatar(ctx, userID, file.Filename, file.Reader, file.Size, file.ContentType)
	if err != nil {
		return nil, err
	}
	oldKey, err := u.userRepo.UpdateAvatar(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if oldKey != "" && oldKey != key {
		if err := u.images.Delete(ctx, oldKey); err != nil {
			u.log.ErrorErr("failed to delete old avatar", err, "key", oldKey)
		}
	}
	return u.User(ctx, userID)
}

func (u *AuthService) UpdateCoverImage(ctx context.Context, userID uuid.UUID, file models.FileUpload) (*models.User, error) {
	key, err := u.images.UploadCover(ctx, userID, file.Filename, file.Reader, file.Size, file.ContentType)
	if err != nil {
		return nil, err
	}
	oldKey, err := u.userRepo.UpdateCoverImage(ctx, userID, key)
	if err != nil {
		return nil, err
	}
	if oldKey != "" && oldKey != key {
		if err := u.images.Delete(ctx, oldKey); err != nil {
			u.log.ErrorErr("failed to delete old cover image", err, "key", oldKey)
		}
	}
	return u.User(ctx, userID)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func checkPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
