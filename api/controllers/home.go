package controllers

import (
	"net/http"

	"github.com/angelmondragon/shopassist-backend/api/responses"
)

// Home is the unauthenticated plain-text liveness route.
func Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteText(w, http.StatusOK, "Backend is running!")
	}
}
