package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopassist-backend/api/middleware"
	"github.com/angelmondragon/shopassist-backend/api/responses"
	"github.com/angelmondragon/shopassist-backend/internal/chathistory"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
)

// ChatHistory returns the caller's chat log, oldest first.
func ChatHistory(svc chathistory.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chat history service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authorization token is missing!"))
			return
		}

		entries, err := svc.List(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, entries)
	}
}
