//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/pkg/config"
	"gym-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper signs tokens with the same secret as the app under test.
type JWTHelper struct {
	live    *jwt.Service
	expired *jwt.Service
}

func NewJWTHelper(t *testing.T, cfg config.JWTConfig) *JWTHelper {
	t.Helper()
	access, err := time.ParseDuration(cfg.AccessTokenDuration)
	require.NoError(t, err)
	refresh, err := time.ParseDuration(cfg.RefreshTokenDuration)
	require.NoError(t, err)

	return &JWTHelper{
		live:    jwt.NewService(cfg.Secret, access, refresh),
		expired: jwt.NewService(cfg.Secret, -time.Minute, -time.Minute),
	}
}

func (h *JWTHelper) AccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.live.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) RefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.live.GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

// ExpiredAccessToken is already past its expiry when returned.
func (h *JWTHelper) ExpiredAccessToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.expired.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
