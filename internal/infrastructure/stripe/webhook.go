package stripe

import (
	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/stripe/stripe-go/v82/webhook"
)

// WebhookVerifier checks the Stripe-Signature header against the shared
// webhook secret. The payload must be the raw, unparsed request body;
// re-serialized JSON breaks the signature.
type WebhookVerifier struct {
	secret string
}

func NewWebhookVerifier(secret string) application.WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

func (v *WebhookVerifier) Verify(payload []byte, signatureHeader string) (*domain.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, v.secret)
	if err != nil {
		return nil, err
	}

	return &domain.WebhookEvent{
		ID:      event.ID,
		Kind:    domain.KindOf(string(event.Type)),
		RawType: string(event.Type),
		Payload: event.Data.Raw,
	}, nil
}
