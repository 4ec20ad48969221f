package middleware

import (
	"net/http"
	"strings"

	"github.com/angelmondragon/shopassist-backend/api/responses"
	"github.com/angelmondragon/shopassist-backend/pkg/auth"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
)

const (
	msgTokenMissing = "Authorization token is missing!"
	msgTokenInvalid = "Invalid or expired token."
)

// Auth validates the bearer token and seeds the request context with the caller identity.
// A missing header is 401; anything the verifier rejects is 403.
func Auth(verifier auth.Verifier, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, msgTokenMissing))
				return
			}

			token := raw
			if len(token) >= 7 && strings.EqualFold(token[:7], "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" || verifier == nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, msgTokenInvalid))
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeForbidden, err, msgTokenInvalid))
				return
			}

			ctx := WithUserID(r.Context(), identity.UserID)
			if logg != nil {
				ctx = logg.WithUserID(ctx, identity.UserID)
				ctx = logg.WithField(ctx, "auth_provider", identity.Provider)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
