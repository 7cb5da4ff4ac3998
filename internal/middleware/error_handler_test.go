package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), ErrorHandler())
	router.GET("/unwritten", func(c *gin.Context) {
		c.Error(errors.New("something failed")) //nolint:errcheck
	})
	router.GET("/written", func(c *gin.Context) {
		c.Error(errors.New("already handled")) //nolint:errcheck
		c.JSON(http.StatusBadGateway, gin.H{"error": "settlement_failed"})
	})
	router.GET("/clean", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	t.Run("writes 500 for unhandled context errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/unwritten", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "internal_error")
	})

	t.Run("leaves already-written responses alone", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/written", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "settlement_failed")
	})

	t.Run("no-op without errors", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/clean", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
