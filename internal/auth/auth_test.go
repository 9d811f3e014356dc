package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"balloon-flights-backend/internal/config"
	"balloon-flights-backend/internal/database/models"
	apperrors "balloon-flights-backend/internal/errors"
	"balloon-flights-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *AuthConfig {
	return &AuthConfig{JWTSecret: "test-signing-key", TokenTTL: time.Hour, Issuer: defaultIssuer}
}

func testUser(staff bool) *models.User {
	return &models.User{BaseModel: models.BaseModel{ID: uuid.New()}, Username: "ana", IsStaff: staff}
}

func TestAuthConfig(t *testing.T) {
	t.Run("derived from application config", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{JWTSecret: "s", JWTTTLHours: 2})
		assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
		assert.Equal(t, defaultIssuer, cfg.Issuer)
		assert.NoError(t, cfg.ValidateConfig())
	})

	t.Run("non-positive TTL falls back to a day", func(t *testing.T) {
		cfg := NewAuthConfig(&config.Config{JWTSecret: "s"})
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		err := (&AuthConfig{TokenTTL: time.Hour}).ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("service refuses invalid config", func(t *testing.T) {
		_, err := NewAuthService(&AuthConfig{}, nil)
		assert.Error(t, err)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	user := testUser(true)

	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "ana", claims.Username)
	assert.True(t, claims.IsStaff)

	actor := claims.Actor()
	assert.Equal(t, user.ID, actor.UserID)
	assert.True(t, actor.IsStaff)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)
}

func TestJWTRejectsForeignTokens(t *testing.T) {
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	t.Run("other secret", func(t *testing.T) {
		other, err := NewAuthService(&AuthConfig{JWTSecret: "other", TokenTTL: time.Hour, Issuer: defaultIssuer}, nil)
		require.NoError(t, err)
		token, err := other.GenerateJWT(testUser(false))
		require.NoError(t, err)

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		defer func() { service.now = time.Now }()

		token, err := service.GenerateJWT(testUser(false))
		require.NoError(t, err)
		service.now = time.Now

		_, err = service.ValidateJWT(token)
		assert.Error(t, err)
	})

	t.Run("unsupported signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{UserID: uuid.New()})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = service.ValidateJWT(signed)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceInterface(ctrl)
	service, err := NewAuthService(testConfig(), users)
	require.NoError(t, err)

	user := testUser(false)
	users.EXPECT().Authenticate(gomock.Any(), "ana", "hot-air-123").Return(user, nil)
	users.EXPECT().Authenticate(gomock.Any(), "ana", "wrong").Return(nil, apperrors.ErrInvalidCredentials)

	response, err := service.Login(t.Context(), "ana", "hot-air-123")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(3600), response.ExpiresIn)
	assert.Equal(t, user.ID, response.UserID)

	_, err = service.Login(t.Context(), "ana", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceInterface(ctrl)
	service, err := NewAuthService(testConfig(), users)
	require.NoError(t, err)
	handler := NewAuthHandler(service)

	post := func(h gin.HandlerFunc, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		h(c)
		return w
	}

	t.Run("login success", func(t *testing.T) {
		users.EXPECT().Authenticate(gomock.Any(), "ana", "hot-air-123").Return(testUser(false), nil)

		w := post(handler.Login, `{"username":"ana","password":"hot-air-123"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		var response LoginResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
	})

	t.Run("login bad credentials", func(t *testing.T) {
		users.EXPECT().Authenticate(gomock.Any(), "ana", "nope").Return(nil, apperrors.ErrInvalidCredentials)

		w := post(handler.Login, `{"username":"ana","password":"nope"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("login malformed body", func(t *testing.T) {
		w := post(handler.Login, `{"username":"ana"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("register conflict", func(t *testing.T) {
		users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrUserExists)

		w := post(handler.Register, `{"username":"ana","password":"hot-air-123"}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("register validation", func(t *testing.T) {
		users.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ValidationErrors{"password": "out of range"})

		w := post(handler.Register, `{"username":"ana","password":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"password":"out of range"`)
	})

	t.Run("register success", func(t *testing.T) {
		users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(testUser(false), nil)

		w := post(handler.Register, `{"username":"ana","password":"hot-air-123"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)
	mw := NewAuthMiddleware(service)

	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID, "staff": actor.IsStaff})
	})
	router.GET("/admin", mw.RequireAuth(), mw.RequireStaff(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	request := func(path, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	regular, err := service.GenerateJWT(testUser(false))
	require.NoError(t, err)
	staff, err := service.GenerateJWT(testUser(true))
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, request("/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, request("/me", regular).Code)
	assert.Equal(t, http.StatusUnauthorized, request("/me", "Bearer garbage").Code)
	assert.Equal(t, http.StatusOK, request("/me", "Bearer "+regular).Code)

	assert.Equal(t, http.StatusForbidden, request("/admin", "Bearer "+regular).Code)
	assert.Equal(t, http.StatusNoContent, request("/admin", "Bearer "+staff).Code)
}

func TestActorFromWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := ActorFrom(c)
	assert.False(t, ok)

	_, ok = GetUserID(c)
	assert.False(t, ok)
}
