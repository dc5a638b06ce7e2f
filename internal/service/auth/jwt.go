package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"
)

var signingMethod = jwt.SigningMethodHS256

// JWTManager signs and verifies the two token kinds. Access and refresh
// tokens use distinct secrets, so one can never pass for the other even
// before the token_type claim is checked.
type JWTManager struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
}

func NewJWTManager(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        issuer,
	}
}

type TokenClaims struct {
	TokenType string    `json:"token_type"`
	UserID    uuid.UUID `json:"user_id"`
	jwt.RegisteredClaims
}

func (j *JWTManager) sign(userID uuid.UUID, tokenType, secret string, ttl time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(signingMethod, TokenClaims{
		TokenType: tokenType,
		UserID:    userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    j.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("%s token signing failed: %w", tokenType, err)
	}
	return signed, nil
}

// GenerateTokenPair mints both tokens with a shared issue time.
func (j *JWTManager) GenerateTokenPair(userID uuid.UUID) (*models.TokenPair, error) {
	now := time.Now()

	accessToken, err := j.sign(userID, AccessTokenType, j.accessSecret, j.accessTTL, now)
	if err != nil {
		return nil, err
	}

	refreshToken, err := j.sign(userID, RefreshTokenType, j.refreshSecret, j.refreshTTL, now)
	if err != nil {
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (j *JWTManager) parse(tokenStr, secret, wantType string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method != signingMethod {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, app_errors.ErrTokenExpired
		}
		return nil, app_errors.ErrUnauthenticated
	}

	if claims.TokenType != wantType {
		return nil, app_errors.ErrUnauthenticated
	}

	return claims, nil
}

// AccessClaims verifies an access token and returns its claims.
func (j *JWTManager) AccessClaims(tokenStr string) (*TokenClaims, error) {
	return j.parse(tokenStr, j.accessSecret, AccessTokenType)
}

// RefreshClaims verifies a refresh token and returns its claims.
func (j *JWTManager) RefreshClaims(tokenStr string) (*TokenClaims, error) {
	return j.parse(tokenStr, j.refreshSecret, RefreshTokenType)
}

func (j *JWTManager) RefreshTTL() time.Duration {
	return j.refreshTTL
}

func (j *JWTManager) AccessTTL() time.Duration {
	return j.accessTTL
}
