//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/pkg/jwt"
	"gym-booking/internal/usecase"
	"gym-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("test-secret-key", time.Minute, time.Hour)
	m := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	echo := func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"user_id": ""})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": id.String()})
	}

	r := gin.New()
	r.GET("/private", m.RequireAuth(), echo)
	r.GET("/optional", m.OptionalAuth(), echo)
	r.GET("/admin", m.RequireAuth(), m.RequireRoleAtLeast(user.RoleAdmin), echo)
	return r, svc
}

func TestRequireAuth(t *testing.T) {
	r, svc := newAuthRouter(t)
	id := uuid.New()

	access, err := svc.GenerateAccessToken(id, user.RoleCustomer)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(id, user.RoleCustomer)
	require.NoError(t, err)

	t.Run("valid access token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, access)

		var res map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
		assert.Equal(t, id.String(), res["user_id"])
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, "not.a.jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/private", nil, refresh)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestOptionalAuth(t *testing.T) {
	r, svc := newAuthRouter(t)
	id := uuid.New()
	access, err := svc.GenerateAccessToken(id, user.RoleCustomer)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		wantID string
	}{
		{name: "guest", token: "", wantID: ""},
		{name: "invalid token is treated as guest", token: "bogus", wantID: ""},
		{name: "customer", token: access, wantID: id.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, r, http.MethodGet, "/optional", nil, tt.token)

			var res map[string]string
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &res)
			assert.Equal(t, tt.wantID, res["user_id"])
		})
	}
}

func TestRequireRoleAtLeast(t *testing.T) {
	r, svc := newAuthRouter(t)

	customer, err := svc.GenerateAccessToken(uuid.New(), user.RoleCustomer)
	require.NoError(t, err)
	admin, err := svc.GenerateAccessToken(uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	t.Run("customer is forbidden", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, customer)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/admin", nil, admin)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)
	})
}
