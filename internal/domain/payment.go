// Package domain holds the identity, session, and payment types the rest of
// the service is built around.
package domain

// MinimumAmountCents is the smallest amount the processor will transact,
// in minor currency units ($0.50).
const MinimumAmountCents = 50

// DefaultCurrency is applied when a payment request omits the currency code.
const DefaultCurrency = "usd"

// PaymentIntentRequest is a validated request to open a payment intent with
// the processor. Amounts are integers in minor currency units. The caller's
// identity travels as opaque metadata for later reconciliation.
type PaymentIntentRequest struct {
	AmountCents int64
	Currency    string
	Metadata    map[string]string
}

// PaymentIntentResult carries the opaque client-confirmation token the
// caller's payment widget uses to complete the charge directly with the
// processor. The processor stays authoritative for settlement state.
type PaymentIntentResult struct {
	ClientSecret string
}

// NewPaymentIntentRequest validates the amount, applies the default
// currency, and attaches the caller's identity as metadata.
func NewPaymentIntentRequest(amountCents int64, currency string, caller Identity) (*PaymentIntentRequest, error) {
	if amountCents < MinimumAmountCents {
		return nil, NewInvalidAmountError(amountCents)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return &PaymentIntentRequest{
		AmountCents: amountCents,
		Currency:    currency,
		Metadata: map[string]string{
			"userId":    caller.ID,
			"userEmail": caller.Email,
		},
	}, nil
}
