package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimiter(t *testing.T, limit int, period time.Duration) (echo.MiddlewareFunc, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return IPRateLimiter(limit, period, client), mr
}

func hitEndpoint(mw echo.MiddlewareFunc) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/sms/send", nil)
	req.RemoteAddr = "192.0.2.10:52000"
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/sms/send")

	handler := mw(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)

	return rec
}

func TestIPRateLimiter_AllowsWithinLimit(t *testing.T) {
	mw, _ := setupRateLimiter(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := hitEndpoint(mw)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestIPRateLimiter_BlocksOverLimit(t *testing.T) {
	mw, _ := setupRateLimiter(t, 2, time.Minute)

	hitEndpoint(mw)
	hitEndpoint(mw)
	rec := hitEndpoint(mw)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestIPRateLimiter_WindowResets(t *testing.T) {
	mw, mr := setupRateLimiter(t, 1, time.Minute)

	hitEndpoint(mw)
	blocked := hitEndpoint(mw)
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)

	// Advance the fake Redis clock past the window
	mr.FastForward(2 * time.Minute)

	rec := hitEndpoint(mw)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiter_SetsRemainingHeader(t *testing.T) {
	mw, _ := setupRateLimiter(t, 5, time.Minute)

	first := hitEndpoint(mw)
	second := hitEndpoint(mw)

	assert.Equal(t, "4", first.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "3", second.Header().Get("X-RateLimit-Remaining"))
}
