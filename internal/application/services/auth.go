package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/google/uuid"
)

// AuthService drives the delegated authorization flow: redirect out to the
// identity provider, exchange the callback code, and bind the resulting
// identity to a server-side session.
type AuthService struct {
	provider   application.IdentityProvider
	sessions   application.SessionStore
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewAuthService builds the service. provider may be nil when the identity
// integration is unconfigured; login then short-circuits to NotConfigured
// while logout keeps working.
func NewAuthService(
	provider application.IdentityProvider,
	sessions application.SessionStore,
	sessionTTL time.Duration,
	logger *slog.Logger,
) *AuthService {
	return &AuthService{
		provider:   provider,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Configured reports whether the identity provider integration is available.
func (s *AuthService) Configured() bool {
	return s.provider != nil
}

// BeginLogin produces the provider redirect URL and the CSRF state the
// caller must carry through the round trip.
func (s *AuthService) BeginLogin() (redirectURL, state string, err error) {
	if s.provider == nil {
		return "", "", application.NewNotConfiguredError(
			"Google OAuth",
			"set CHECKOUT_GOOGLE__CLIENT_ID and CHECKOUT_GOOGLE__CLIENT_SECRET to enable authentication",
		)
	}
	state = uuid.New().String()
	return s.provider.AuthCodeURL(state), state, nil
}

// CompleteLogin exchanges the provider's authorization code for the user's
// identity and creates a session bound to it. The returned token is the
// opaque value handed to the client.
func (s *AuthService) CompleteLogin(ctx context.Context, code string) (string, error) {
	if s.provider == nil {
		return "", application.NewNotConfiguredError(
			"Google OAuth",
			"set CHECKOUT_GOOGLE__CLIENT_ID and CHECKOUT_GOOGLE__CLIENT_SECRET to enable authentication",
		)
	}

	identity, err := s.provider.Exchange(ctx, code)
	if err != nil {
		s.logger.Error("authorization code exchange failed", "error", err)
		return "", application.NewUpstreamFailureError(err)
	}

	token := uuid.New().String()
	if err := s.sessions.Put(ctx, token, *identity, s.sessionTTL); err != nil {
		s.logger.Error("failed to persist session", "user_id", identity.ID, "error", err)
		return "", application.NewInternalError(err)
	}

	s.logger.Info("session created", "user_id", identity.ID)
	return token, nil
}

// Logout destroys the session. It never fails from the caller's point of
// view: a store fault is logged and swallowed so the handler can still
// redirect.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Remove(ctx, token); err != nil {
		s.logger.Error("session delete failed during logout", "error", err)
	}
}
