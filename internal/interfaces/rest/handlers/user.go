package handlers

import (
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/middleware"
)

// User returns the caller's identity. The gate has already resolved it; a
// missing context identity here means the route was wired without the gate.
func (h *Handlers) User(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		rest.WriteError(w, application.NewUnauthenticatedError())
		return
	}
	rest.WriteJSON(w, http.StatusOK, identity)
}
