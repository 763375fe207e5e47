package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
)

// Session provides high-level operations for issuing, refreshing, and
// revoking session tokens. It composes the TokenManager and the
// SessionStore registry.
type Session struct {
	manager model.TokenManager
	store   model.SessionStore
	policy  model.SessionPolicy
	logger  *logger.Logger
}

func NewSession(manager model.TokenManager, store model.SessionStore, policy model.SessionPolicy, logger *logger.Logger) *Session {
	return &Session{manager: manager, store: store, policy: policy, logger: logger}
}

// NOTE: Keep this duration in sync with the token manager. The registry
// entry TTL must equal the refresh token's own expiry so the entry
// never outlives the token it guards.
const refreshTTL = 10 * 24 * time.Hour

// Issue mints a fresh token pair and registers the refresh token as the
// user's single honored session. Under the single-session policy the
// Put overwrites any prior entry, silently invalidating a previous
// concurrent session's refresh token.
func (s *Session) Issue(ctx context.Context, userID uuid.UUID) (model.TokenPair, error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("issue refresh: %w", err)
	}

	if err := s.store.Put(ctx, userID, refresh, refreshTTL); err != nil {
		return model.TokenPair{}, fmt.Errorf("register refresh: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Refresh exchanges a presented refresh token for a new access token.
// The refresh token itself is not rotated: the same token remains valid
// until its own expiry or until the next login or logout replaces or
// deletes the registry entry.
func (s *Session) Refresh(ctx context.Context, presented string) (string, error) {
	if presented == "" {
		return "", model.ErrTokenMissing
	}

	userID, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		s.logger.Debug("Session service: refresh token failed verification",
			"error", err.Error())
		return "", model.ErrTokenInvalid
	}

	stored, err := s.store.Get(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		// No registry entry compares as not-equal: the session was
		// logged out, superseded, or expired.
		return "", model.ErrTokenInvalid
	}
	if err != nil {
		return "", fmt.Errorf("look up session entry: %w", err)
	}

	// Exact equality against the stored value is the sole replay guard.
	if subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) != 1 {
		s.logger.Info("Session service: presented refresh token superseded",
			"user_id", userID)
		return "", model.ErrTokenInvalid
	}

	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", fmt.Errorf("issue new access: %w", err)
	}

	return access, nil
}

// Revoke deletes the user's registry entry for a presented refresh
// token. It is best-effort: an absent or unverifiable token is not an
// error, so logout always succeeds from the caller's perspective.
func (s *Session) Revoke(ctx context.Context, presented string) error {
	if presented == "" {
		return nil
	}

	userID, err := s.manager.ParseRefreshToken(presented)
	if err != nil {
		s.logger.Debug("Session service: skipping revoke for unverifiable token",
			"error", err.Error())
		return nil
	}

	if err := s.store.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete session entry: %w", err)
	}

	s.logger.Info("Session service: session revoked", "user_id", userID)
	return nil
}

// UserID resolves the user ID from an access token. Used by the
// authentication middleware.
func (s *Session) UserID(ctx context.Context, accessToken string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(accessToken)
}
