package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// WebhookHandler reacts to one verified event kind. A handler error is
// logged but never propagated: the processor retries on non-2xx, and a
// handler bug must not trigger redelivery of an already-verified event.
type WebhookHandler func(ctx context.Context, event *domain.WebhookEvent) error

// WebhookService authenticates inbound processor callbacks and routes
// verified events by kind. It is stateless per call and carries no session
// context; the signature is the only credential.
type WebhookService struct {
	verifier application.WebhookVerifier
	handlers map[domain.EventKind]WebhookHandler
	logger   *slog.Logger
}

func NewWebhookService(verifier application.WebhookVerifier, logger *slog.Logger) *WebhookService {
	s := &WebhookService{
		verifier: verifier,
		handlers: make(map[domain.EventKind]WebhookHandler),
		logger:   logger,
	}
	s.handlers[domain.EventPaymentSucceeded] = s.onPaymentSucceeded
	return s
}

// On replaces the handler for a known event kind.
func (s *WebhookService) On(kind domain.EventKind, h WebhookHandler) {
	s.handlers[kind] = h
}

// Process verifies the raw payload and dispatches it. The error return is
// non-nil only for verification failures; once an event is verified the call
// always succeeds so the endpoint can acknowledge it.
//
// TODO: dedupe retried deliveries by event ID once handlers grow side
// effects beyond logging; the processor delivers at-least-once.
func (s *WebhookService) Process(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := s.verifier.Verify(payload, signatureHeader)
	if err != nil {
		s.logger.Warn("webhook signature verification failed", "error", err)
		return application.NewSignatureInvalidError(err)
	}

	switch event.Kind {
	case domain.EventPaymentSucceeded, domain.EventPaymentFailed:
		if h, ok := s.handlers[event.Kind]; ok {
			if err := h(ctx, event); err != nil {
				s.logger.Error("webhook handler failed",
					"event_id", event.ID,
					"event_type", event.RawType,
					"error", err,
				)
			}
		}
	case domain.EventUnknown:
		s.logger.Info("unhandled event type", "event_id", event.ID, "event_type", event.RawType)
	}

	return nil
}

func (s *WebhookService) onPaymentSucceeded(ctx context.Context, event *domain.WebhookEvent) error {
	var intent struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(event.Payload, &intent); err != nil {
		return err
	}
	s.logger.Info("payment succeeded", "payment_intent_id", intent.ID, "event_id", event.ID)
	return nil
}
