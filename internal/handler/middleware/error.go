package middleware

import (
	"log/slog"
	"net/http"

	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const maxStackLines = 16

// ErrorHandler logs errors recorded on the context and guarantees a response
// body when a handler aborted without writing one.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if !c.Writer.Written() && len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.Response{Error: "Internal server error"})
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			for _, ginErr := range c.Errors {
				slog.Error("request failed",
					"path", c.Request.URL.Path,
					"status", c.Writer.Status(),
					"stack", errs.ExtractStackLines(ginErr.Err, maxStackLines),
				)
			}
		}
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path)

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.Response{Error: "Internal server error"})
			}
		}()
		c.Next()
	}
}
