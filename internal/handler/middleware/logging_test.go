//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddlewareSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(LoggingMiddleware(nil, config.LogConfig{Level: "info", TimeFormat: "2006-01-02 15:04:05.000"}))

	var captured string
	engine.GET("/ping", func(c *gin.Context) {
		captured = GetRequestID(c)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, captured)
}
