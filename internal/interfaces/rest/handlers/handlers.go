package handlers

import (
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/config"
)

// Handlers owns the HTTP surface: the auth flow, the payment API, and the
// webhook endpoint.
type Handlers struct {
	authService    *services.AuthService
	paymentService *services.PaymentService
	webhookService *services.WebhookService
	sessionCfg     config.SessionConfig
	logger         *slog.Logger
}

func NewHandlers(
	authService *services.AuthService,
	paymentService *services.PaymentService,
	webhookService *services.WebhookService,
	sessionCfg config.SessionConfig,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		authService:    authService,
		paymentService: paymentService,
		webhookService: webhookService,
		sessionCfg:     sessionCfg,
		logger:         logger,
	}
}

// NewRouter wires every route with its guards: gate on the protected API,
// authLimit on the auth flow. The webhook endpoint is deliberately outside
// the gate; its signature is the credential.
func NewRouter(h *Handlers, gate, authLimit func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("GET /auth/login", authLimit(http.HandlerFunc(h.Login)))
	mux.Handle("GET /auth/callback", authLimit(http.HandlerFunc(h.Callback)))
	mux.Handle("GET /auth/logout", authLimit(http.HandlerFunc(h.Logout)))

	mux.Handle("GET /api/user", gate(http.HandlerFunc(h.User)))
	mux.HandleFunc("GET /api/config", h.PaymentConfig)
	mux.Handle("POST /api/create-payment-intent", gate(http.HandlerFunc(h.CreatePaymentIntent)))
	mux.HandleFunc("POST /api/webhook", h.Webhook)

	mux.HandleFunc("GET /healthz", h.Health)

	return mux
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
