package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/ficmart-checkout/internal/application"
	"github.com/DanielPopoola/ficmart-checkout/internal/domain"
	"github.com/jackc/pgx/v5"
)

// SessionRepository stores sessions in the sessions table. The full identity
// record is persisted as JSONB, matching the in-memory store's contract:
// clients hold only the opaque token.
//
// Schema:
//
//	CREATE TABLE sessions (
//	    token      TEXT PRIMARY KEY,
//	    identity   JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL,
//	    expires_at TIMESTAMPTZ
//	);
type SessionRepository struct {
	db Querier
}

func NewSessionRepository(db Querier) *SessionRepository {
	return &SessionRepository{db: db}
}

var _ application.SessionStore = (*SessionRepository)(nil)

func (r *SessionRepository) Put(ctx context.Context, token string, identity domain.Identity, ttl time.Duration) error {
	payload, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("error marshalling identity: %w", err)
	}

	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	query := `
		INSERT INTO sessions (token, identity, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (token) DO UPDATE
		SET identity = EXCLUDED.identity, expires_at = EXCLUDED.expires_at
	`
	_, err = r.db.Exec(ctx, query, token, payload, time.Now(), expiresAt)
	return err
}

func (r *SessionRepository) Get(ctx context.Context, token string) (domain.Identity, bool, error) {
	query := `
		SELECT identity FROM sessions
		WHERE token = $1 AND (expires_at IS NULL OR expires_at > now())
	`

	var payload []byte
	err := r.db.QueryRow(ctx, query, token).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, err
	}

	var identity domain.Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return domain.Identity{}, false, fmt.Errorf("error unmarshalling identity: %w", err)
	}
	return identity, true, nil
}

func (r *SessionRepository) Remove(ctx context.Context, token string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

func (r *SessionRepository) PurgeExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at IS NOT NULL AND expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
