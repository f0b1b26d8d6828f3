package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
)

// MockSessionStore
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Identity

	PutFn    func(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error
	GetFn    func(ctx context.Context, token string) (domain.Identity, bool, error)
	RemoveFn func(ctx context.Context, token string) error

	RemoveCalls []string
}

func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{sessions: make(map[string]domain.Identity)}
}

func (m *MockSessionStore) Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.PutFn != nil {
		return m.PutFn(ctx, token, identity, ttl)
	}
	m.sessions[token] = identity
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, token string) (domain.Identity, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.GetFn != nil {
		return m.GetFn(ctx, token)
	}
	identity, ok := m.sessions[token]
	return identity, ok, nil
}

func (m *MockSessionStore) Remove(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls = append(m.RemoveCalls, token)
	if m.RemoveFn != nil {
		return m.RemoveFn(ctx, token)
	}
	delete(m.sessions, token)
	return nil
}

func (m *MockSessionStore) PurgeExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

// MockIdentityProvider
type MockIdentityProvider struct {
	AuthCodeURLFn func(state string) string
	ExchangeFn    func(ctx context.Context, code string) (*domain.Identity, error)

	ExchangeCalls int
}

func (m *MockIdentityProvider) AuthCodeURL(state string) string {
	if m.AuthCodeURLFn != nil {
		return m.AuthCodeURLFn(state)
	}
	return "https://provider.example.com/authorize?state=" + state
}

func (m *MockIdentityProvider) Exchange(ctx context.Context, code string) (*domain.Identity, error) {
	m.ExchangeCalls++
	if m.ExchangeFn != nil {
		return m.ExchangeFn(ctx, code)
	}
	return &domain.Identity{ID: "user-1", Name: "Ada", Email: "ada@example.com"}, nil
}

// MockProcessorClient
type MockProcessorClient struct {
	CreatePaymentIntentFn func(ctx context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntentResult, error)

	Calls []*domain.PaymentIntentRequest
}

func (m *MockProcessorClient) CreatePaymentIntent(ctx context.Context, req *domain.PaymentIntentRequest) (*domain.PaymentIntentResult, error) {
	m.Calls = append(m.Calls, req)
	if m.CreatePaymentIntentFn != nil {
		return m.CreatePaymentIntentFn(ctx, req)
	}
	return &domain.PaymentIntentResult{ClientSecret: "pi_123_secret_abc"}, nil
}

// MockWebhookVerifier
type MockWebhookVerifier struct {
	VerifyFn func(payload []byte, signatureHeader string) (*domain.WebhookEvent, error)
}

func (m *MockWebhookVerifier) Verify(payload []byte, signatureHeader string) (*domain.WebhookEvent, error) {
	return m.VerifyFn(payload, signatureHeader)
}
