package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
)

// SessionSweeper periodically purges expired sessions from the store so
// abandoned logins do not accumulate.
type SessionSweeper struct {
	sessions application.SessionStore
	interval time.Duration
	logger   *slog.Logger
}

func NewSessionSweeper(sessions application.SessionStore, interval time.Duration, logger *slog.Logger) *SessionSweeper {
	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (w *SessionSweeper) Start(ctx context.Context) {
	w.logger.Info("session sweeper started", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("session sweeper stopping")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *SessionSweeper) sweep(ctx context.Context) {
	purged, err := w.sessions.PurgeExpired(ctx)
	if err != nil {
		w.logger.Error("session sweep failed", "error", err)
		return
	}
	if purged > 0 {
		w.logger.Info("purged expired sessions", "count", purged)
	}
}
