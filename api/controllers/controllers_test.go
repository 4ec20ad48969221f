package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angelmondragon/shopassist-backend/api/middleware"
	"github.com/angelmondragon/shopassist-backend/internal/chatbot"
	"github.com/angelmondragon/shopassist-backend/internal/chathistory"
	checkoutsvc "github.com/angelmondragon/shopassist-backend/internal/checkout"
	"github.com/angelmondragon/shopassist-backend/internal/products"
	"github.com/angelmondragon/shopassist-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/angelmondragon/shopassist-backend/pkg/types"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func authed(req *http.Request, userID string) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID))
}

type stubProducts struct {
	items []products.ProductDTO
	err   error
}

func (s stubProducts) List(context.Context) ([]products.ProductDTO, error) { return s.items, s.err }

type stubChatbot struct {
	gotUser  string
	gotQuery string
	err      error
}

func (s *stubChatbot) Ask(_ context.Context, userID, query string) (*chatbot.Reply, error) {
	s.gotUser, s.gotQuery = userID, query
	if s.err != nil {
		return nil, s.err
	}
	return &chatbot.Reply{Response: "ok", Products: []products.ProductDTO{}}, nil
}

type stubHistory struct {
	entries []chathistory.EntryDTO
	err     error
}

func (s stubHistory) Append(context.Context, string, string, string) error { return nil }
func (s stubHistory) List(context.Context, string) ([]chathistory.EntryDTO, error) {
	return s.entries, s.err
}

type stubCheckout struct {
	items []checkoutsvc.CartItem
	err   error
}

func (s *stubCheckout) Place(_ context.Context, _ string, items []checkoutsvc.CartItem) (*checkoutsvc.Result, error) {
	s.items = items
	if s.err != nil {
		return nil, s.err
	}
	return &checkoutsvc.Result{Message: "Order placed successfully!", OrderID: 7, TotalAmount: 19.98}, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

func TestHome(t *testing.T) {
	rec := httptest.NewRecorder()
	Home().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Backend is running!", rec.Body.String())
}

func TestListProducts(t *testing.T) {
	rec := httptest.NewRecorder()
	svc := stubProducts{items: []products.ProductDTO{{ID: 1, Name: "Laptop", Category: "Electronics", Price: 999.99}}}
	ListProducts(svc, testLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Laptop", body[0]["name"])
	assert.Equal(t, 999.99, body[0]["price"])

	rec = httptest.NewRecorder()
	ListProducts(stubProducts{err: errors.New("no such table")}, testLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var errBody types.ErrorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&errBody))
	assert.Equal(t, "Database connection error", errBody.Message)
}

func TestChatbotQuery(t *testing.T) {
	svc := &stubChatbot{}
	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"query":"Search for LAPTOP"}`)), "user-1")
	ChatbotQuery(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", svc.gotUser)
	assert.Equal(t, "Search for LAPTOP", svc.gotQuery)
	assert.JSONEq(t, `{"response":"ok","products":[]}`, rec.Body.String())
}

func TestChatbotQueryAcceptsLongQueries(t *testing.T) {
	svc := &stubChatbot{}
	query := strings.Repeat("laptop ", 1000)
	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodPost, "/api/chatbot", bytes.NewReader(body)), "user-1")
	ChatbotQuery(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, query, svc.gotQuery)
}

func TestChatbotQueryStorageFailureKeepsReplyShape(t *testing.T) {
	svc := &stubChatbot{err: pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("db gone"), "Database connection error. Please try again later.")}
	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`{"query":"hi"}`)), "user-1")
	ChatbotQuery(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"response":"Database connection error. Please try again later.","products":[]}`, rec.Body.String())
}

func TestChatbotQueryRejectsBadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodPost, "/api/chatbot", strings.NewReader(`not json`)), "user-1")
	ChatbotQuery(&stubChatbot{}, testLogger()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlersRequireUser(t *testing.T) {
	handlers := map[string]http.Handler{
		"chatbot":  ChatbotQuery(&stubChatbot{}, testLogger()),
		"history":  ChatHistory(stubHistory{}, testLogger()),
		"checkout": Checkout(&stubCheckout{}, testLogger()),
	}
	for name, h := range handlers {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
	}
}

func TestChatHistory(t *testing.T) {
	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodGet, "/api/chat_history", nil), "user-1")
	ChatHistory(stubHistory{entries: []chathistory.EntryDTO{}}, testLogger()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = httptest.NewRecorder()
	failing := stubHistory{err: pkgerrors.Wrap(pkgerrors.CodeInternal, errors.New("x"), "Error fetching chat history.")}
	ChatHistory(failing, testLogger()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error fetching chat history.")
}

func TestCheckout(t *testing.T) {
	svc := &stubCheckout{}
	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"cartItems":[{"id":1,"quantity":2}]}`)), "user-1")
	Checkout(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Order placed successfully!","order_id":7,"total_amount":19.98}`, rec.Body.String())
	require.Len(t, svc.items, 1)
	assert.Equal(t, int64(1), svc.items[0].ProductID)
}

func TestCheckoutBadCartNeverReachesService(t *testing.T) {
	svc := &stubCheckout{}
	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"cartItems":[]}`)), "user-1")
	Checkout(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cart is empty.")
	assert.Nil(t, svc.items)
}

func TestCheckoutNotFound(t *testing.T) {
	svc := &stubCheckout{err: pkgerrors.New(pkgerrors.CodeNotFound, "Product with ID 9999 not found in inventory.")}
	rec := httptest.NewRecorder()
	req := authed(httptest.NewRequest(http.MethodPost, "/api/checkout", strings.NewReader(`{"cartItems":[{"id":9999,"quantity":1}]}`)), "user-1")
	Checkout(svc, testLogger()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product with ID 9999 not found in inventory.")
}

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "test"}}

	rec := httptest.NewRecorder()
	HealthReady(cfg, testLogger(), stubPinger{}, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test", rec.Header().Get("X-ShopAssist-Env"))

	rec = httptest.NewRecorder()
	HealthReady(cfg, testLogger(), stubPinger{}, stubPinger{err: errors.New("refused")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	HealthLive(cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.JSONEq(t, `{"status":"live"}`, rec.Body.String())
}
