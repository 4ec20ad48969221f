package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/shopassist-backend/pkg/logger"
)

type observed struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	seen []observed
}

func (r *recordingObserver) Observe(method, route string, status int, _ time.Duration) {
	r.seen = append(r.seen, observed{method: method, route: route, status: status})
}

func TestMetricsUsesRoutePattern(t *testing.T) {
	obs := &recordingObserver{}
	r := chi.NewRouter()
	r.Use(Metrics(obs))
	r.Get("/api/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/items/42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	require.Len(t, obs.seen, 2)
	assert.Equal(t, observed{method: http.MethodGet, route: "/api/items/{id}", status: http.StatusTeapot}, obs.seen[0])
	assert.Equal(t, http.StatusNotFound, obs.seen[1].status)
}

func TestRecovererReturnsTypedError(t *testing.T) {
	h := Recoverer(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	body := decodeErrorBody(t, resp)
	assert.Equal(t, "An unexpected error occurred.", body.Message)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
}

func TestRequestIDPropagatesHeader(t *testing.T) {
	h := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "req-1")
	h.ServeHTTP(resp, req)
	assert.Equal(t, "req-1", resp.Header().Get("X-Request-Id"))

	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, resp.Header().Get("X-Request-Id"))
}

func TestRequestIDReplacesUntrustedHeader(t *testing.T) {
	h := RequestID(logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for _, inbound := range []string{"has spaces", "line\nbreak", strings.Repeat("a", 65)} {
		resp := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", inbound)
		h.ServeHTTP(resp, req)

		got := resp.Header().Get("X-Request-Id")
		assert.NotEqual(t, inbound, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rec.Status())
	rec.WriteHeader(http.StatusCreated)
	rec.WriteHeader(http.StatusInternalServerError)
	assert.Equal(t, http.StatusCreated, rec.Status())
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	h := CORS(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://ecommerce-chatbot-chi.vercel.app")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	assert.Equal(t, "https://ecommerce-chatbot-chi.vercel.app", resp.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	resp = httptest.NewRecorder()
	h.ServeHTTP(resp, req)
	assert.Empty(t, resp.Header().Get("Access-Control-Allow-Origin"))
}
