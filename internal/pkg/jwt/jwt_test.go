//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"gaya-booking/internal/domain/user"
	"gaya-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := jwt.NewService("secret", time.Hour)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "host@example.com", user.RoleHost)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "host@example.com", claims.Email)
	assert.Equal(t, "host", claims.Role)
}

func TestExpiredToken(t *testing.T) {
	service := jwt.NewService("secret", -time.Minute)

	token, err := service.GenerateToken(uuid.New(), "guest@example.com", user.RoleGuest)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestTamperedToken(t *testing.T) {
	service := jwt.NewService("secret", time.Hour)

	token, err := service.GenerateToken(uuid.New(), "guest@example.com", user.RoleGuest)
	require.NoError(t, err)

	_, err = service.ValidateToken(token + "x")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
