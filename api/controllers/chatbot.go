package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopassist-backend/api/middleware"
	"github.com/angelmondragon/shopassist-backend/api/responses"
	"github.com/angelmondragon/shopassist-backend/api/validators"
	"github.com/angelmondragon/shopassist-backend/internal/chatbot"
	"github.com/angelmondragon/shopassist-backend/internal/products"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
)

type chatbotRequest struct {
	Query string `json:"query"`
}

// ChatbotQuery answers a free-text query. Storage failures keep the chatbot body shape
// so the frontend can render the message in the chat window.
func ChatbotQuery(svc chatbot.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chatbot service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authorization token is missing!"))
			return
		}

		var payload chatbotRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		reply, err := svc.Ask(r.Context(), userID, payload.Query)
		if err != nil {
			status, body := responses.PublicError(err)
			responses.LogError(r.Context(), logg, status, err)
			responses.WriteSuccessStatus(w, status, chatbot.Reply{
				Response: body.Message,
				Products: []products.ProductDTO{},
			})
			return
		}

		responses.WriteSuccess(w, reply)
	}
}
