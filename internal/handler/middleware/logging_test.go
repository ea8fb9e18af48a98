//go:build unit

package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"
	"time"

	"gym-booking/internal/domain/user"
	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/pkg/jwt"
	"gym-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T) (*gin.Engine, *bytes.Buffer, *jwt.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := jwt.NewService("test-secret-key", time.Minute, time.Hour)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	r := gin.New()
	r.Use(middleware.RequestLogger(logger, time.UTC))
	r.GET("/orders/:reference", auth.OptionalAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": middleware.GetRequestID(c)})
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, buf, svc
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestRequestLogger(t *testing.T) {
	t.Run("logs identity set by later middleware", func(t *testing.T) {
		r, buf, svc := newLoggedRouter(t)
		id := uuid.New()
		token, err := svc.GenerateAccessToken(id, user.RoleCustomer)
		require.NoError(t, err)

		req := nethttptest.NewRequest(http.MethodGet, "/orders/HPT-ABC123", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		entry := lastLogLine(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, id.String(), entry["user_id"])
		assert.Equal(t, "customer", entry["role"])
		assert.Equal(t, "HPT-ABC123", entry["reference"])
		assert.Equal(t, "/orders/:reference", entry["route"])
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("keeps a caller supplied request id", func(t *testing.T) {
		r, buf, _ := newLoggedRouter(t)

		req := nethttptest.NewRequest(http.MethodGet, "/orders/HPT-1", nil)
		req.Header.Set("X-Request-ID", "provider-42")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "provider-42", rec.Header().Get("X-Request-ID"))
		assert.Equal(t, "provider-42", lastLogLine(t, buf)["request_id"])
		assert.Contains(t, rec.Body.String(), "provider-42")
	})

	t.Run("replaces an unprintable request id", func(t *testing.T) {
		r, _, _ := newLoggedRouter(t)

		req := nethttptest.NewRequest(http.MethodGet, "/orders/HPT-1", nil)
		req.Header.Set("X-Request-ID", "bad id\twith spaces")
		rec := nethttptest.NewRecorder()
		r.ServeHTTP(rec, req)

		got := rec.Header().Get("X-Request-ID")
		assert.NotEqual(t, "bad id\twith spaces", got)
		assert.NotEmpty(t, got)
	})

	t.Run("probe traffic is debug and client errors are warnings", func(t *testing.T) {
		r, buf, _ := newLoggedRouter(t)

		r.ServeHTTP(nethttptest.NewRecorder(), nethttptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, "DEBUG", lastLogLine(t, buf)["level"])

		r.ServeHTTP(nethttptest.NewRecorder(), nethttptest.NewRequest(http.MethodGet, "/nope", nil))
		entry := lastLogLine(t, buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.InDelta(t, 404, entry["status_code"], 0)
	})
}
