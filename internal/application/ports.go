package application

import (
	"context"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// SessionStore is the port for session persistence. A missing token is not
// an error: Get returns ok=false and callers treat it as unauthenticated.
type SessionStore interface {
	Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error
	Get(ctx context.Context, token string) (domain.Identity, bool, error)
	Remove(ctx context.Context, token string) error
	PurgeExpired(ctx context.Context) (int64, error)
}

// IdentityProvider is the port for the external identity provider's
// authorization-code flow.
type IdentityProvider interface {
	// AuthCodeURL builds the consent-page redirect carrying the given
	// CSRF state.
	AuthCodeURL(state string) string
	// Exchange trades the callback's authorization code for the
	// authenticated user's profile.
	Exchange(ctx context.Context, code string) (*domain.Identity, error)
}

// ProcessorClient is the port for the external payment processor.
type ProcessorClient interface {
	CreatePaymentIntent(ctx context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntentResult, error)
}

// WebhookVerifier authenticates an inbound processor callback. The raw body
// must be handed over unparsed; verification failure means the payload is
// never dispatched.
type WebhookVerifier interface {
	Verify(payload []byte, signatureHeader string) (*domain.WebhookEvent, error)
}
