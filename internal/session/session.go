package session

import (
	"context"
	"errors"
	"time"

	"github.com/sabari1933/hrconsole/internal/domain/profile"
)

// Session is the single source of truth for authentication state. Token
// present means authenticated; User is display data only and never gates
// anything on its own.
type Session struct {
	Token     string           `json:"token"`
	User      *profile.Profile `json:"user,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

var ErrNotFound = errors.New("session not found")

// Store persists sessions keyed by an opaque session ID (the cookie value).
//
// Save must persist the user profile before the token, so that a partially
// written session can never present a token without its profile. Clear is
// idempotent and safe to call on an already-empty session.
type Store interface {
	Load(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, id string, s Session) error
	Clear(ctx context.Context, id string) error
}
