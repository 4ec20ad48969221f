package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/shopassist-backend/pkg/auth"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
	"github.com/angelmondragon/shopassist-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	tokens map[string]string
	calls  int
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*auth.Identity, error) {
	s.calls++
	if uid, ok := s.tokens[token]; ok {
		return &auth.Identity{UserID: uid, Provider: "stub"}, nil
	}
	return nil, auth.ErrInvalidToken
}

func authProtected(t *testing.T, v auth.Verifier, captured *string) http.Handler {
	t.Helper()
	return Auth(v, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
}

func decodeErrorBody(t *testing.T, resp *httptest.ResponseRecorder) types.ErrorBody {
	t.Helper()
	var body types.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestAuthRejectsMissingToken(t *testing.T) {
	verifier := &stubVerifier{}
	var user string
	resp := httptest.NewRecorder()
	authProtected(t, verifier, &user).ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, "Authorization token is missing!", decodeErrorBody(t, resp).Message)
	assert.Zero(t, verifier.calls)
	assert.Empty(t, user)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	for _, header := range []string{"Bearer invalid", "Bearer ", "invalid"} {
		var user string
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		authProtected(t, &stubVerifier{}, &user).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusForbidden, resp.Code, header)
		assert.Equal(t, "Invalid or expired token.", decodeErrorBody(t, resp).Message)
		assert.Empty(t, user)
	}
}

func TestAuthAcceptsBearerAndBareTokens(t *testing.T) {
	verifier := &stubVerifier{tokens: map[string]string{"good": "user-1"}}
	for _, header := range []string{"Bearer good", "bearer good", "good"} {
		var user string
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("Authorization", header)
		resp := httptest.NewRecorder()
		authProtected(t, verifier, &user).ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code, header)
		assert.Equal(t, "user-1", user)
	}
}

func TestAuthWithoutVerifierRejects(t *testing.T) {
	var user string
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	resp := httptest.NewRecorder()
	authProtected(t, nil, &user).ServeHTTP(resp, req)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAuthTagsRequestLogWithCaller(t *testing.T) {
	var buf bytes.Buffer
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("info"), Output: &buf, Format: "json"})
	verifier := &stubVerifier{tokens: map[string]string{"good": "user-1"}}

	h := Auth(verifier, logg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logg.Info(r.Context(), "handler.ran")
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Authorization", "Bearer good")
	h.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "user-1", entry["user_id"])
	assert.Equal(t, "stub", entry["auth_provider"])
}
