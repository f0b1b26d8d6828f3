package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/application/services"
	"github.com/DanielPopoola/ficmart-checkout/internal/config"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/google"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/session"
	"github.com/DanielPopoola/ficmart-checkout/internal/infrastructure/stripe"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ficmart-checkout/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ficmart-checkout/internal/worker"
	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := cfg.Logger.NewLogger()
	slog.SetDefault(logger)

	logger.Info("starting checkout service",
		"port", cfg.Server.Port,
		"log_level", cfg.Logger.Level,
	)

	ctx := context.Background()

	var sessions application.SessionStore = session.NewMemoryStore()
	if cfg.Database.URL != "" {
		pool, err := postgres.Connect(ctx, &cfg.Database, logger)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		sessions = postgres.NewSessionRepository(pool)
	}

	var provider application.IdentityProvider
	if cfg.Google.Configured() {
		provider = google.NewProvider(cfg.Google)
		logger.Info("google oauth enabled")
	} else {
		logger.Warn("google oauth disabled: credentials not configured")
	}

	var processor application.ProcessorClient
	if cfg.Stripe.Configured() {
		processor = stripe.NewClient(cfg.Stripe)
		logger.Info("stripe payments enabled")
	} else {
		logger.Warn("stripe payments disabled: credentials not configured")
	}

	authService := services.NewAuthService(provider, sessions, cfg.Session.TTL, logger)
	paymentService := services.NewPaymentService(processor, cfg.Stripe.PublishableKey, logger)
	webhookService := services.NewWebhookService(stripe.NewWebhookVerifier(cfg.Stripe.WebhookSecret), logger)

	h := handlers.NewHandlers(authService, paymentService, webhookService, cfg.Session, logger)

	gate := middleware.RequireSession(sessions, cfg.Session.CookieName, logger)
	authLimiter := middleware.NewRateLimiter(rate.Every(time.Second), 10)

	mux := handlers.NewRouter(h, gate, authLimiter.Limit)

	handler := middleware.Recovery(logger)(mux)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.Timeout(cfg.Server.WriteTimeout)(handler)

	server := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	sweeper := worker.NewSessionSweeper(sessions, cfg.Worker.SweepInterval, logger)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	go sweeper.Start(workerCtx)

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	cancelWorkers()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
