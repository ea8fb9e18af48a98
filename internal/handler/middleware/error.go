package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"gym-booking/internal/handler/httperr"
	"gym-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the last public error if a handler recorded one without responding.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil))
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.Newf("panic: %v", rec)
				slog.Error("recovered from panic",
					"error", fmt.Sprint(rec),
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(err, 12))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(c, http.StatusInternalServerError, "Internal server error", nil))
			}
		}()
		c.Next()
	}
}
