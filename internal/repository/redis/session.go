// Package redis implements the session registry over a Redis key-value
// store with per-entry TTLs.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/storeline/storeline-server/internal/model"
)

var _ model.SessionStore = (*SessionRegistry)(nil)

// SessionRegistry maps a user ID to their single currently honored
// refresh token.
type SessionRegistry struct {
	client *redis.Client
}

// NewSessionRegistry creates a registry from a Redis URL.
func NewSessionRegistry(url string) (*SessionRegistry, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	return &SessionRegistry{client: redis.NewClient(opts)}, nil
}

// NewSessionRegistryWithClient wraps an existing client (used in tests).
func NewSessionRegistryWithClient(client *redis.Client) *SessionRegistry {
	return &SessionRegistry{client: client}
}

func sessionKey(userID uuid.UUID) string {
	return "refresh_token:" + userID.String()
}

// Put overwrites the registry entry for the user. Any previously stored
// refresh token stops being honored at this point.
func (r *SessionRegistry) Put(ctx context.Context, userID uuid.UUID, refreshToken string, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionKey(userID), refreshToken, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

// Get returns the stored refresh token or ErrNotFound.
func (r *SessionRegistry) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	val, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get refresh token: %w", err)
	}
	return val, nil
}

// Delete removes the registry entry. Deleting an absent entry is not an
// error.
func (r *SessionRegistry) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}

// Ping verifies connectivity to the store.
func (r *SessionRegistry) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (r *SessionRegistry) Close() error {
	return r.client.Close()
}
