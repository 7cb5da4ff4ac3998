package middleware

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkoutResponse() *cachedResponse {
	return &cachedResponse{
		StatusCode: http.StatusCreated,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"data":{"id":"01JORDER0000000000000001","total_cents":42997}}`),
		Timestamp:  time.Now(),
	}
}

func TestIdempotencyCache_SetAndGet(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)

	resp := checkoutResponse()
	cache.Set(100, resp)

	retrieved, found := cache.Get(100)
	require.True(t, found)
	assert.Equal(t, http.StatusCreated, retrieved.StatusCode)
	assert.Equal(t, resp.Headers, retrieved.Headers)
	assert.Equal(t, resp.Body, retrieved.Body)
}

func TestIdempotencyCache_MissingKey(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)

	_, found := cache.Get(999)
	assert.False(t, found)
}

func TestIdempotencyCache_ExpiredEntry(t *testing.T) {
	cache := newIdempotencyCache(50 * time.Millisecond)

	stale := checkoutResponse()
	stale.Timestamp = time.Now().Add(-time.Minute)
	cache.mu.Lock()
	cache.items[456] = stale
	cache.mu.Unlock()

	_, found := cache.Get(456)
	assert.False(t, found)
}

func TestIdempotencyCache_OverwriteKey(t *testing.T) {
	cache := newIdempotencyCache(time.Minute)

	first := checkoutResponse()
	cache.Set(100, first)

	second := checkoutResponse()
	second.StatusCode = http.StatusOK
	cache.Set(100, second)

	retrieved, found := cache.Get(100)
	require.True(t, found)
	assert.Equal(t, http.StatusOK, retrieved.StatusCode)
}
