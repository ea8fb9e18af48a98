//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"gym-booking/internal/handler/middleware"
	"gym-booking/internal/pkg/config"
	"gym-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newLimitedRouter(client *redis.Client, enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.RateLimit.Enabled = enabled
	cfg.RateLimit.Capacity = 1

	r := gin.New()
	r.GET("/limited", middleware.NewRateLimiter(client, cfg).Limit("test"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRateLimiter_PassThrough(t *testing.T) {
	unreachable := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = unreachable.Close() })

	tests := []struct {
		name   string
		router *gin.Engine
	}{
		{name: "no redis client", router: newLimitedRouter(nil, true)},
		{name: "disabled", router: newLimitedRouter(unreachable, false)},
		{name: "redis down fails open", router: newLimitedRouter(unreachable, true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 3 {
				rec := httptest.PerformRequest(t, tt.router, http.MethodGet, "/limited", nil, "")
				httptest.AssertSuccessResponse(t, rec, http.StatusNoContent, nil)
			}
		})
	}
}
