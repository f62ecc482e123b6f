//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newErrorTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.ErrorHandler())
	return engine
}

func performGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestErrorHandler(t *testing.T) {
	t.Run("aborted handler errors keep the flat body shape", func(t *testing.T) {
		engine := newErrorTestEngine()
		engine.GET("/conflict", func(c *gin.Context) {
			httperr.AbortWithError(c, http.StatusConflict, errs.New("slot occupied"), "Time slot is already taken")
		})

		rec := performGet(engine, "/conflict")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.JSONEq(t, `{"error": "Time slot is already taken"}`, rec.Body.String())
	})

	t.Run("recorded error without a body falls back to 500", func(t *testing.T) {
		engine := newErrorTestEngine()
		engine.GET("/silent", func(c *gin.Context) {
			_ = c.Error(errs.New("nobody rendered me"))
		})

		rec := performGet(engine, "/silent")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
	})

	t.Run("clean request passes through untouched", func(t *testing.T) {
		engine := newErrorTestEngine()
		engine.GET("/ok", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		rec := performGet(engine, "/ok")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
	})
}

func TestCustomRecovery(t *testing.T) {
	engine := newErrorTestEngine()
	engine.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})

	rec := performGet(engine, "/panic")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rec.Body.String())
}
