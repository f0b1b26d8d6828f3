package services

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// PaymentService validates payment requests from authorized sessions and
// forwards them to the processor. One invocation makes at most one outbound
// call; resubmission after a failure creates a new processor-side intent.
type PaymentService struct {
	processor      application.ProcessorClient
	publishableKey string
	logger         *slog.Logger
}

// NewPaymentService builds the service. processor may be nil when the Stripe
// integration is unconfigured; issuance then short-circuits to NotConfigured
// before any validation or network activity.
func NewPaymentService(processor application.ProcessorClient, publishableKey string, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		processor:      processor,
		publishableKey: publishableKey,
		logger:         logger,
	}
}

// PublishableKey returns the processor's public key for the client-side
// widget, or NotConfigured when it is absent.
func (s *PaymentService) PublishableKey() (string, error) {
	if s.publishableKey == "" {
		return "", application.NewNotConfiguredError(
			"Stripe",
			"set CHECKOUT_STRIPE__PUBLISHABLE_KEY to enable payments",
		)
	}
	return s.publishableKey, nil
}

// CreateIntent issues a payment intent for the authenticated caller.
// Validation order: configuration, then amount, then exactly one processor
// call. The caller's id and email ride along as metadata for reconciliation.
func (s *PaymentService) CreateIntent(ctx context.Context, amountCents int64, currency string, caller domain.Identity) (*domain.PaymentIntentResult, error) {
	if s.processor == nil {
		return nil, application.NewNotConfiguredError(
			"Stripe",
			"set CHECKOUT_STRIPE__SECRET_KEY to enable payments",
		)
	}

	req, err := domain.NewPaymentIntentRequest(amountCents, currency, caller)
	if err != nil {
		return nil, err
	}

	result, err := s.processor.CreatePaymentIntent(ctx, req)
	if err != nil {
		s.logger.Error("error creating payment intent",
			"user_id", caller.ID,
			"amount_cents", req.AmountCents,
			"currency", req.Currency,
			"error", err,
		)
		return nil, application.NewUpstreamFailureError(err)
	}

	return result, nil
}
