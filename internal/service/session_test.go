package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/storeline/storeline-server/internal/logger"
	servermocks "github.com/storeline/storeline-server/internal/mocks"
	"github.com/storeline/storeline-server/internal/model"
)

func TestSession_Issue(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &servermocks.TokenManager{}
	store := &servermocks.SessionStore{}

	manager.On("GenerateAccessToken", userID).Return("access", nil).Once()
	manager.On("GenerateRefreshToken", userID).Return("refresh", nil).Once()
	store.On("Put", ctx, userID, "refresh", refreshTTL).Return(nil).Once()

	svc := NewSession(manager, store, model.SessionPolicySingle, logger.New(0))

	pair, err := svc.Issue(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
	store.AssertExpectations(t)
}

func TestSession_Issue_ManagerError(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &servermocks.TokenManager{}
	store := &servermocks.SessionStore{}

	manager.On("GenerateAccessToken", userID).Return("", assert.AnError).Once()

	svc := NewSession(manager, store, model.SessionPolicySingle, logger.New(0))

	_, err := svc.Issue(ctx, userID)
	require.Error(t, err)
}

func TestSession_Refresh_Success(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	presented := "refresh-token"

	manager := &servermocks.TokenManager{}
	store := &servermocks.SessionStore{}

	manager.On("ParseRefreshToken", presented).Return(userID, nil).Once()
	store.On("Get", ctx, userID).Return(presented, nil).Once()
	manager.On("GenerateAccessToken", userID).Return("access-new", nil).Once()

	svc := NewSession(manager, store, model.SessionPolicySingle, logger.New(0))

	access, err := svc.Refresh(ctx, presented)
	require.NoError(t, err)
	assert.Equal(t, "access-new", access)

	// No rotation: the registry entry is left untouched.
	store.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	manager.AssertNotCalled(t, "GenerateRefreshToken", mock.Anything)
}

func TestSession_Refresh_MissingToken(t *testing.T) {
	svc := NewSession(&servermocks.TokenManager{}, &servermocks.SessionStore{}, model.SessionPolicySingle, logger.New(0))

	_, err := svc.Refresh(context.Background(), "")
	require.ErrorIs(t, err, model.ErrTokenMissing)
}

func TestSession_Refresh_UnverifiableToken(t *testing.T) {
	manager := &servermocks.TokenManager{}
	manager.On("ParseRefreshToken", "garbage").Return(uuid.Nil, assert.AnError).Once()

	svc := NewSession(manager, &servermocks.SessionStore{}, model.SessionPolicySingle, logger.New(0))

	_, err := svc.Refresh(context.Background(), "garbage")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestSession_Refresh_NoRegistryEntry(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &servermocks.TokenManager{}
	store := &servermocks.SessionStore{}

	manager.On("ParseRefreshToken", "refresh-token").Return(userID, nil).Once()
	store.On("Get", ctx, userID).Return("", model.ErrNotFound).Once()

	svc := NewSession(manager, store, model.SessionPolicySingle, logger.New(0))

	_, err := svc.Refresh(ctx, "refresh-token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
}

func TestSession_Refresh_SupersededToken(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &servermocks.TokenManager{}
	store := &servermocks.SessionStore{}

	manager.On("ParseRefreshToken", "old-session-token").Return(userID, nil).Once()
	store.On("Get", ctx, userID).Return("new-session-token", nil).Once()

	svc := NewSession(manager, store, model.SessionPolicySingle, logger.New(0))

	_, err := svc.Refresh(ctx, "old-session-token")
	require.ErrorIs(t, err, model.ErrTokenInvalid)
	manager.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
}

func TestSession_Revoke(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	manager := &servermocks.TokenManager{}
	store := &servermocks.SessionStore{}

	manager.On("ParseRefreshToken", "refresh-token").Return(userID, nil).Once()
	store.On("Delete", ctx, userID).Return(nil).Once()

	svc := NewSession(manager, store, model.SessionPolicySingle, logger.New(0))

	require.NoError(t, svc.Revoke(ctx, "refresh-token"))
	store.AssertExpectations(t)
}

func TestSession_Revoke_BestEffort(t *testing.T) {
	ctx := context.Background()

	manager := &servermocks.TokenManager{}
	store := &servermocks.SessionStore{}

	manager.On("ParseRefreshToken", "garbage").Return(uuid.Nil, assert.AnError).Once()

	svc := NewSession(manager, store, model.SessionPolicySingle, logger.New(0))

	// Empty and unverifiable tokens both succeed without touching the
	// registry.
	require.NoError(t, svc.Revoke(ctx, ""))
	require.NoError(t, svc.Revoke(ctx, "garbage"))
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
