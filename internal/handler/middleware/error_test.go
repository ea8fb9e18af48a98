//go:build unit

package middleware_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponsesCarryRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(middleware.CustomRecovery())
	r.Use(middleware.RequestLogger(slog.New(slog.DiscardHandler), time.UTC))
	r.Use(middleware.ErrorHandler())
	r.GET("/panic", func(*gin.Context) { panic("boom") })
	r.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("slot taken"), "Slot taken", map[string]int{"left": 0})
	})

	tests := []struct {
		path       string
		wantStatus int
		wantMsg    string
	}{
		{path: "/panic", wantStatus: http.StatusInternalServerError, wantMsg: "Internal server error"},
		{path: "/conflict", wantStatus: http.StatusConflict, wantMsg: "Slot taken"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := nethttptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("X-Request-ID", "req-7")
			rec := nethttptest.NewRecorder()

			r.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body httperr.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.Equal(t, "req-7", body.Error.RequestID)
			assert.NotContains(t, rec.Body.String(), "slot taken")
		})
	}
}
