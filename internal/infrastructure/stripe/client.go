// Package stripe talks to the Stripe REST API directly over HTTP. The SDK's
// types are reused for responses and webhook events, but requests go through
// our own client so transport timeouts and error mapping stay consistent
// with the rest of the service.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	stripe "github.com/stripe/stripe-go/v82"
)

const defaultAPIBase = "https://api.stripe.com"

type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
}

// NewClient builds a processor client from config. BaseURL is overridable
// for tests and defaults to the public Stripe API.
func NewClient(cfg config.StripeConfig) application.ProcessorClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultAPIBase
	}
	return &Client{
		baseURL:   baseURL,
		secretKey: cfg.SecretKey,
		httpClient: &http.Client{
			Timeout: cfg.ConnTimeout,
		},
	}
}

func (c *Client) CreatePaymentIntent(ctx context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntentResult, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(req.AmountCents, 10))
	form.Set("currency", req.Currency)
	for k, v := range req.Metadata {
		form.Set(fmt.Sprintf("metadata[%s]", k), v)
	}

	endpoint := fmt.Sprintf("%s/v1/payment_intents", c.baseURL)
	intent, err := post[stripe.PaymentIntent](c, ctx, endpoint, form)
	if err != nil {
		return nil, err
	}

	return &domain.PaymentIntentResult{ClientSecret: intent.ClientSecret}, nil
}

func post[Resp any](c *Client, ctx context.Context, endpoint string, form url.Values) (*Resp, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		var errResp stripeErrorResponse
		if err := json.Unmarshal(body, &errResp); err != nil {
			return nil, fmt.Errorf("stripe returned status %d: %s", resp.StatusCode, string(body))
		}
		return nil, &ProcessorError{
			Type:       errResp.Error.Type,
			Code:       errResp.Error.Code,
			Message:    errResp.Error.Message,
			StatusCode: resp.StatusCode,
		}
	}

	var apiResp Resp
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("error decoding json response: %w", err)
	}

	return &apiResp, nil
}
