//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/handler/middleware"
	"gaya-booking/internal/pkg/jwt"
	"gaya-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, service *jwt.Service, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(service))

	router := gin.New()
	handlers := append([]gin.HandlerFunc{authMw.RequireAuth()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity, ok := middleware.GetIdentity(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": identity.ID.String()})
	})
	router.GET("/protected", handlers...)
	return router
}

func perform(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	router := newAuthRouter(t, service)

	t.Run("valid bearer token passes", func(t *testing.T) {
		token, err := service.GenerateToken(uuid.New(), "guest@example.com", user.RoleGuest)
		require.NoError(t, err)

		rec := perform(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := perform(router, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := perform(router, "Basic dXNlcjpwYXNz")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := perform(router, "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		expired := jwt.NewService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(uuid.New(), "guest@example.com", user.RoleGuest)
		require.NoError(t, err)

		rec := perform(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour)
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(service))
	router := newAuthRouter(t, service, authMw.RequireRole(user.RoleHost))

	t.Run("host passes", func(t *testing.T) {
		token, err := service.GenerateToken(uuid.New(), "host@example.com", user.RoleHost)
		require.NoError(t, err)

		rec := perform(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("guest is forbidden", func(t *testing.T) {
		token, err := service.GenerateToken(uuid.New(), "guest@example.com", user.RoleGuest)
		require.NoError(t, err)

		rec := perform(router, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
