package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	mw "github.com/5w1tchy/isbn-books/internal/api/middlewares"
	"github.com/5w1tchy/isbn-books/internal/logging"
)

func TestPerIPKey(t *testing.T) {
	key := mw.PerIPKey("rl")

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	assert.Equal(t, "rl:10.0.0.7", key(req))

	req.Header.Set("X-Real-IP", "10.0.0.8")
	assert.Equal(t, "rl:10.0.0.8", key(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	assert.Equal(t, "rl:203.0.113.9", key(req))
}

func TestRedisTokenBucket_FailsOpen(t *testing.T) {
	// nothing listens on port 1
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	tb := mw.NewRedisTokenBucket(rdb, 1, 1, mw.PerIPKey("rl"), logging.Discard())
	called := false
	h := tb.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true }))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/books", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Policy"))
}
