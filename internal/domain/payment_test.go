package domain_test

import (
	"testing"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaymentIntentRequest_BelowMinimum(t *testing.T) {
	caller := domain.Identity{ID: "user-1", Email: "user@example.com"}

	for _, amount := range []int64{0, 1, 10, 49, -100} {
		req, err := domain.NewPaymentIntentRequest(amount, "usd", caller)
		require.Error(t, err, "amount %d should be rejected", amount)
		assert.Nil(t, req)
		assert.True(t, domain.IsErrorCode(err, domain.ErrCodeInvalidAmount))
	}
}

func TestNewPaymentIntentRequest_DefaultCurrency(t *testing.T) {
	caller := domain.Identity{ID: "user-1", Email: "user@example.com"}

	req, err := domain.NewPaymentIntentRequest(1000, "", caller)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), req.AmountCents)
	assert.Equal(t, "usd", req.Currency)
}

func TestNewPaymentIntentRequest_CallerMetadata(t *testing.T) {
	caller := domain.Identity{ID: "google-123", Name: "Ada", Email: "ada@example.com"}

	req, err := domain.NewPaymentIntentRequest(50, "eur", caller)
	require.NoError(t, err)
	assert.Equal(t, "eur", req.Currency)
	assert.Equal(t, "google-123", req.Metadata["userId"])
	assert.Equal(t, "ada@example.com", req.Metadata["userEmail"])
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, domain.EventPaymentSucceeded, domain.KindOf("payment_intent.succeeded"))
	assert.Equal(t, domain.EventPaymentFailed, domain.KindOf("payment_intent.payment_failed"))
	assert.Equal(t, domain.EventUnknown, domain.KindOf("charge.refunded"))
	assert.Equal(t, domain.EventUnknown, domain.KindOf(""))
}
