package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotencyRouter(cfg IdempotencyConfig, calls *int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Idempotency(cfg))
	router.POST("/test", func(c *gin.Context) {
		n := atomic.AddInt64(calls, 1)
		c.JSON(http.StatusCreated, gin.H{"call": n})
	})
	router.GET("/test", func(c *gin.Context) {
		atomic.AddInt64(calls, 1)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func postWithKey(router *gin.Engine, key, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency_ReplaysCachedResponse(t *testing.T) {
	var calls int64
	router := newIdempotencyRouter(DefaultIdempotencyConfig(), &calls)

	first := postWithKey(router, "key-1", `{"a":1}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postWithKey(router, "key-1", `{"a":1}`)
	require.Equal(t, http.StatusCreated, second.Code)
	assert.Equal(t, "true", second.Header().Get("X-Idempotency-Replayed"))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int64(1), atomic.LoadInt64(&calls))
}

func TestIdempotency_DistinctKeysExecuteSeparately(t *testing.T) {
	var calls int64
	router := newIdempotencyRouter(DefaultIdempotencyConfig(), &calls)

	postWithKey(router, "key-a", `{}`)
	postWithKey(router, "key-b", `{}`)

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestIdempotency_SameKeyDifferentBody(t *testing.T) {
	var calls int64
	router := newIdempotencyRouter(DefaultIdempotencyConfig(), &calls)

	postWithKey(router, "key-1", `{"a":1}`)
	postWithKey(router, "key-1", `{"a":2}`)

	// The body participates in the cache key, so this is not a replay
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestIdempotency_NoKeyPassesThrough(t *testing.T) {
	var calls int64
	router := newIdempotencyRouter(DefaultIdempotencyConfig(), &calls)

	postWithKey(router, "", `{}`)
	postWithKey(router, "", `{}`)

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestIdempotency_SkipsSafeMethods(t *testing.T) {
	var calls int64
	router := newIdempotencyRouter(DefaultIdempotencyConfig(), &calls)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestIdempotency_DisabledConfig(t *testing.T) {
	var calls int64
	router := newIdempotencyRouter(IdempotencyConfig{Enabled: false}, &calls)

	postWithKey(router, "key-1", `{}`)
	postWithKey(router, "key-1", `{}`)

	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}

func TestIdempotency_DoesNotCacheErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var calls int64
	router := gin.New()
	router.Use(Idempotency(DefaultIdempotencyConfig()))
	router.POST("/fail", func(c *gin.Context) {
		atomic.AddInt64(&calls, 1)
		c.JSON(http.StatusBadGateway, gin.H{"error": "settlement_failed"})
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/fail", bytes.NewBufferString(`{}`))
		req.Header.Set(IdempotencyKeyHeader, "key-1")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadGateway, w.Code)
	}

	// Non-2xx responses are never cached, so retries re-execute
	assert.Equal(t, int64(2), atomic.LoadInt64(&calls))
}
