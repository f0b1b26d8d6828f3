package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/middleware"
)

type createPaymentIntentRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type paymentConfigResponse struct {
	PublishableKey string `json:"publishableKey"`
}

// PaymentConfig hands the client the processor's publishable key, or 501
// when payments are unconfigured. Not gated: the landing page probes it
// before login.
func (h *Handlers) PaymentConfig(w http.ResponseWriter, r *http.Request) {
	key, err := h.paymentService.PublishableKey()
	if err != nil {
		rest.WriteError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, paymentConfigResponse{PublishableKey: key})
}

// CreatePaymentIntent issues a payment intent for the authenticated caller
// and returns the client confirmation secret.
func (h *Handlers) CreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		rest.WriteError(w, application.NewUnauthenticatedError())
		return
	}

	var req createPaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("invalid request body: %w", err)))
		return
	}

	result, err := h.paymentService.CreateIntent(r.Context(), req.Amount, req.Currency, identity)
	if err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, createPaymentIntentResponse{ClientSecret: result.ClientSecret})
}
