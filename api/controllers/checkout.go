package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopassist-backend/api/middleware"
	"github.com/angelmondragon/shopassist-backend/api/responses"
	checkoutsvc "github.com/angelmondragon/shopassist-backend/internal/checkout"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
)

// Checkout places an order for the caller's cart and answers 201 with the order id and total.
func Checkout(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		userID := middleware.UserIDFromContext(r.Context())
		if userID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authorization token is missing!"))
			return
		}

		items, err := checkoutsvc.DecodeCart(r.Body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Place(r.Context(), userID, items)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}
