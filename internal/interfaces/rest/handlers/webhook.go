package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest"
)

// maxWebhookBodyBytes bounds processor callback payloads.
const maxWebhookBodyBytes = 64 * 1024

type webhookResponse struct {
	Received bool `json:"received"`
}

// Webhook receives signed processor callbacks. The body must reach the
// verifier raw; any parsing before verification would let a tampered payload
// sneak through re-serialization. Verified events are always acknowledged
// with 2xx so the processor does not redeliver them.
func (h *Handlers) Webhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBodyBytes))
	if err != nil {
		rest.WriteError(w, application.NewInvalidInputError(fmt.Errorf("failed to read request body: %w", err)))
		return
	}

	if err := h.webhookService.Process(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		rest.WriteError(w, err)
		return
	}

	rest.WriteJSON(w, http.StatusOK, webhookResponse{Received: true})
}
