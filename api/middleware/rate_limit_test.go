package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingLimiter struct {
	counts map[string]int64
	err    error
}

func (c *countingLimiter) FixedWindowAllow(_ context.Context, scope string, limit int64, _ time.Duration) (bool, int64, error) {
	if c.err != nil {
		return false, 0, c.err
	}
	c.counts[scope]++
	return c.counts[scope] <= limit, c.counts[scope], nil
}

func rateLimited(limiter *countingLimiter, policy RateLimitPolicy, calls *int) http.Handler {
	return RateLimit(policy, limiter, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.WriteHeader(http.StatusOK)
	}))
}

func asUser(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot", nil)
	return req.WithContext(WithUserID(req.Context(), userID))
}

func TestRateLimitBlocksAfterLimit(t *testing.T) {
	limiter := &countingLimiter{counts: map[string]int64{}}
	calls := 0
	h := rateLimited(limiter, RateLimitPolicy{Name: "chatbot", Limit: 2, Window: time.Minute}, &calls)

	for i := 0; i < 2; i++ {
		resp := httptest.NewRecorder()
		h.ServeHTTP(resp, asUser("user-1"))
		assert.Equal(t, http.StatusOK, resp.Code)
	}

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, asUser("user-1"))
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Equal(t, "60", resp.Header().Get("Retry-After"))
	assert.Equal(t, 2, calls)

	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, asUser("user-2"))
	assert.Equal(t, http.StatusOK, resp.Code, "limits are per user")
	assert.Contains(t, limiter.counts, "chatbot:user-2")
}

func TestRateLimitFailsOpen(t *testing.T) {
	calls := 0
	h := rateLimited(&countingLimiter{err: errors.New("redis down")}, RateLimitPolicy{Name: "chatbot", Limit: 1, Window: time.Minute}, &calls)

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, asUser("user-1"))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, 1, calls)
}

func TestRateLimitDisabledPolicy(t *testing.T) {
	limiter := &countingLimiter{counts: map[string]int64{}}
	calls := 0
	h := rateLimited(limiter, RateLimitPolicy{Name: "chatbot"}, &calls)

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, asUser("user-1"))
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, limiter.counts)
}
