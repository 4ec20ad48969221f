package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopassist-backend/api/responses"
	productsvc "github.com/angelmondragon/shopassist-backend/internal/products"
	pkgerrors "github.com/angelmondragon/shopassist-backend/pkg/errors"
	"github.com/angelmondragon/shopassist-backend/pkg/logger"
)

const msgProductsUnavailable = "Database connection error"

// ListProducts returns the full catalog ordered by id.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, msgProductsUnavailable))
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			if pkgerrors.As(err) == nil {
				err = pkgerrors.Wrap(pkgerrors.CodeInternal, err, msgProductsUnavailable)
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, items)
	}
}
