package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SessionPolicy names how many concurrent sessions a user may hold.
type SessionPolicy string

// SessionPolicySingle keeps at most one honored refresh token per
// user: every login overwrites the previous registry entry.
const SessionPolicySingle SessionPolicy = "single"

// SessionStore is the server-side registry of the refresh token
// currently honored for each user. Put overwrites any existing entry,
// Get returns ErrNotFound when no entry exists, Delete is a no-op for
// absent entries.
type SessionStore interface {
	Put(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error
	Get(ctx context.Context, userID uuid.UUID) (string, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}
