package domain

import "time"

// Identity is the profile record fetched from the identity provider during
// login. It is immutable for the lifetime of the session that holds it.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo"`
}

// Session binds an opaque client-held token to an authenticated Identity.
// The full identity record is stored server-side; the client only ever sees
// the token.
type Session struct {
	Token     string
	Identity  Identity
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session lapsed before now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
