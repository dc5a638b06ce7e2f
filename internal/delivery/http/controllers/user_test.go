package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/app_errors"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/internal/models"
	"github.com/OmmMalhotra02/Vision-Stream-Backend/pkg/logger"
)

// stubAuth implements AuthService with overridable behavior per test.
type stubAuth struct {
	verify  func(token string) (*models.User, error)
	refresh func(presented string) (*models.TokenPair, error)
	login   func(login, password string) (*models.User, *models.TokenPair, error)
	logout  func(userID uuid.UUID) error
}

func (s *stubAuth) RegisterUser(context.Context, models.User, models.FileUpload, *models.FileUpload) (*models.User, error) {
	return nil, nil
}

func (s *stubAuth) LoginUser(_ context.Context, login, password string) (*models.User, *models.TokenPair, error) {
	return s.login(login, password)
}

func (s *stubAuth) Logout(_ context.Context, userID uuid.UUID) error {
	if s.logout != nil {
		return s.logout(userID)
	}
	return nil
}

func (s *stubAuth) RefreshTokens(_ context.Context, presented string) (*models.TokenPair, error) {
	return s.refresh(presented)
}

func (s *stubAuth) VerifyAccessToken(_ context.Context, token string) (*models.User, error) {
	return s.verify(token)
}

func (s *stubAuth) ChangePassword(context.Context, uuid.UUID, string, string) error {
	return nil
}

func (s *stubAuth) User(_ context.Context, id uuid.UUID) (*models.User, error) {
	return &models.User{ID: id, Username: "alice"}, nil
}

func (s *stubAuth) UpdateAccount(context.Context, uuid.UUID, string, string) (*models.User, error) {
	return nil, nil
}

func (s *stubAuth) UpdateAvatar(context.Context, uuid.UUID, models.FileUpload) (*models.User, error) {
	return nil, nil
}

func (s *stubAuth) UpdateCoverImage(context.Context, uuid.UUID, models.FileUpload) (*models.User, error) {
	return nil, nil
}

func (s *stubAuth) TokenTTLs() (time.Duration, time.Duration) {
	return 15 * time.Minute, 240 * time.Hour
}

type stubChannels struct{}

func (stubChannels) ChannelProfile(context.Context, uuid.UUID, string) (*models.ChannelProfile, error) {
	return nil, app_errors.ErrChannelNotFound
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func newAuthTestRouter(auth *stubAuth) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(logger.New("local"), auth, stubChannels{})

	r := gin.New()
	r.GET("/me", h.AuthMiddleware, func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			RespondError(c, http.StatusInternalServerError, "no user in context")
			return
		}
		RespondOK(c, http.StatusOK, gin.H{"id": user.ID.String()}, "ok")
	})
	r.POST("/refresh", h.RefreshAccessToken)
	r.POST("/login", h.Login)
	return r
}

func TestAuthMiddleware_AcceptsCookieToken(t *testing.T) {
	userID := uuid.New()
	auth := &stubAuth{
		verify: func(token string) (*models.User, error) {
			if token != "good-token" {
				return nil, app_errors.ErrUnauthenticated
			}
			return &models.User{ID: userID}, nil
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "good-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	require.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	require.Equal(t, userID.String(), data["id"])
}

func TestAuthMiddleware_AcceptsBearerHeader(t *testing.T) {
	auth := &stubAuth{
		verify: func(token string) (*models.User, error) {
			require.Equal(t, "good-token", token)
			return &models.User{ID: uuid.New()}, nil
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_RejectsMalformedAuthorizationHeader(t *testing.T) {
	auth := &stubAuth{
		verify: func(string) (*models.User, error) {
			t.Fatal("verify must not be called for a malformed header")
			return nil, nil
		},
	}
	r := newAuthTestRouter(auth)

	// "Bearer" appearing mid-header is not a bearer scheme.
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "XBearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_StripsCredentialsFromContextUser(t *testing.T) {
	auth := &stubAuth{
		verify: func(string) (*models.User, error) {
			return &models.User{
				ID:           uuid.New(),
				Password:     "$2a$10$hash",
				RefreshToken: "stored-refresh",
			}, nil
		},
	}

	gin.SetMode(gin.TestMode)
	h := NewUserHandler(logger.New("local"), auth, stubChannels{})
	r := gin.New()

	var attached *models.User
	r.GET("/me", h.AuthMiddleware, func(c *gin.Context) {
		attached, _ = currentUser(c)
		RespondOK(c, http.StatusOK, nil, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "good-token"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, attached)
	require.Empty(t, attached.Password)
	require.Empty(t, attached.RefreshToken)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	auth := &stubAuth{
		verify: func(string) (*models.User, error) {
			t.Fatal("verify must not be called without a token")
			return nil, nil
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeEnvelope(t, w)
	require.Equal(t, false, body["success"])
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	auth := &stubAuth{
		verify: func(string) (*models.User, error) {
			return nil, app_errors.ErrTokenExpired
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "stale"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeEnvelope(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, app_errors.ErrTokenExpired.Error(), body["message"])
}

func TestRefreshAccessToken_FromCookie(t *testing.T) {
	auth := &stubAuth{
		refresh: func(presented string) (*models.TokenPair, error) {
			require.Equal(t, "r1", presented)
			return &models.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "r1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeEnvelope(t, w)
	data := body["data"].(map[string]interface{})
	require.Equal(t, "a2", data["accessToken"])
	require.Equal(t, "r2", data["refreshToken"])

	cookies := w.Result().Cookies()
	names := map[string]string{}
	for _, cookie := range cookies {
		names[cookie.Name] = cookie.Value
	}
	require.Equal(t, "a2", names["accessToken"])
	require.Equal(t, "r2", names["refreshToken"])
}

func TestRefreshAccessToken_FromBody(t *testing.T) {
	auth := &stubAuth{
		refresh: func(presented string) (*models.TokenPair, error) {
			require.Equal(t, "r1", presented)
			return &models.TokenPair{AccessToken: "a2", RefreshToken: "r2"}, nil
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodPost, "/refresh", strings.NewReader(`{"refreshToken":"r1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestRefreshAccessToken_ReusedToken(t *testing.T) {
	auth := &stubAuth{
		refresh: func(string) (*models.TokenPair, error) {
			return nil, app_errors.ErrTokenReused
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refreshToken", Value: "stolen"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	body := decodeEnvelope(t, w)
	require.Equal(t, false, body["success"])
	require.Equal(t, app_errors.ErrTokenReused.Error(), body["message"])
}

func TestRefreshAccessToken_MissingToken(t *testing.T) {
	auth := &stubAuth{
		refresh: func(presented string) (*models.TokenPair, error) {
			require.Empty(t, presented)
			return nil, app_errors.ErrUnauthenticated
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_SetsCookiesAndReturnsPair(t *testing.T) {
	userID := uuid.New()
	auth := &stubAuth{
		login: func(login, password string) (*models.User, *models.TokenPair, error) {
			require.Equal(t, "alice", login)
			require.Equal(t, "secret12", password)
			return &models.User{ID: userID, Username: "alice"},
				&models.TokenPair{AccessToken: "a1", RefreshToken: "r1"}, nil
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"secret12"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var haveAccess, haveRefresh bool
	for _, cookie := range w.Result().Cookies() {
		switch cookie.Name {
		case "accessToken":
			haveAccess = true
			require.True(t, cookie.HttpOnly)
			require.Equal(t, "a1", cookie.Value)
		case "refreshToken":
			haveRefresh = true
			require.True(t, cookie.HttpOnly)
			require.Equal(t, "r1", cookie.Value)
		}
	}
	require.True(t, haveAccess)
	require.True(t, haveRefresh)
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &stubAuth{
		login: func(string, string) (*models.User, *models.TokenPair, error) {
			return nil, nil, app_errors.ErrIncorrectPassword
		},
	}
	r := newAuthTestRouter(auth)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"alice","password":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
