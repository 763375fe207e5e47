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

type authFixture struct {
	userStore *servermocks.UserStore
	hasher    *servermocks.PasswordHasher
	manager   *servermocks.TokenManager
	sessions  *servermocks.SessionStore
	svc       *Auth
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		userStore: &servermocks.UserStore{},
		hasher:    &servermocks.PasswordHasher{},
		manager:   &servermocks.TokenManager{},
		sessions:  &servermocks.SessionStore{},
	}
	sessionSvc := NewSession(f.manager, f.sessions, model.SessionPolicySingle, logger.New(0))
	f.svc = NewAuth(f.userStore, f.hasher, sessionSvc, logger.New(0))
	return f
}

func (f *authFixture) expectIssue(userID uuid.UUID) {
	f.manager.On("GenerateAccessToken", userID).Return("access", nil).Once()
	f.manager.On("GenerateRefreshToken", userID).Return("refresh", nil).Once()
	f.sessions.On("Put", mock.Anything, userID, "refresh", refreshTTL).Return(nil).Once()
}

func TestAuth_SignUp_FreshEmail(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	savedID := uuid.New()
	saved := model.User{
		ID:       savedID,
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Role:     model.RoleCustomer,
	}

	f.userStore.On("GetByEmail", ctx, "ada@example.com").Return(model.User{}, model.ErrNotFound).Once()
	f.hasher.On("Hash", "hunter22").Return("hashed", nil).Once()
	f.userStore.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
		return u.Email == "ada@example.com" &&
			u.PasswordHash == "hashed" &&
			u.Role == model.RoleCustomer &&
			u.ID != uuid.Nil
	})).Return(saved, nil).Once()
	f.expectIssue(savedID)

	// Mixed case and whitespace normalize before lookup and insert.
	info, pair, err := f.svc.SignUp(ctx, "Ada Lovelace", "  Ada@Example.COM ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", info.Email)
	assert.Equal(t, model.RoleCustomer, info.Role)
	assert.Equal(t, "access", pair.AccessToken)
	assert.Equal(t, "refresh", pair.RefreshToken)
	f.userStore.AssertExpectations(t)
}

func TestAuth_SignUp_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	f.userStore.On("GetByEmail", ctx, "ada@example.com").Return(model.User{ID: uuid.New()}, nil).Once()

	_, _, err := f.svc.SignUp(ctx, "Ada Lovelace", "ADA@example.com", "hunter22")
	require.ErrorIs(t, err, model.ErrEmailTaken)

	// No identity is created and no tokens are issued.
	f.userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.manager.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	userID := uuid.New()

	f.userStore.On("GetByEmail", ctx, "ada@example.com").Return(model.User{
		ID:           userID,
		FullName:     "Ada Lovelace",
		Email:        "ada@example.com",
		PasswordHash: "hashed",
		Role:         model.RoleAdmin,
	}, nil).Once()
	f.hasher.On("Verify", "hunter22", "hashed").Return(true).Once()
	f.expectIssue(userID)

	info, pair, err := f.svc.Login(ctx, "ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, userID, info.ID)
	assert.Equal(t, model.RoleAdmin, info.Role)
	assert.Equal(t, "access", pair.AccessToken)
	f.sessions.AssertExpectations(t)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	f.userStore.On("GetByEmail", ctx, "ada@example.com").Return(model.User{
		ID:           uuid.New(),
		PasswordHash: "hashed",
	}, nil).Once()
	f.hasher.On("Verify", "wrong", "hashed").Return(false).Once()

	_, _, err := f.svc.Login(ctx, "ada@example.com", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()

	f.userStore.On("GetByEmail", ctx, "nobody@example.com").Return(model.User{}, model.ErrNotFound).Once()

	_, _, err := f.svc.Login(ctx, "nobody@example.com", "whatever")

	// Same error as a wrong password: the two cases must stay
	// indistinguishable to the caller.
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	f.manager.AssertNotCalled(t, "GenerateAccessToken", mock.Anything)
}

func TestAuth_Logout_Delegates(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture()
	userID := uuid.New()

	f.manager.On("ParseRefreshToken", "refresh-token").Return(userID, nil).Once()
	f.sessions.On("Delete", ctx, userID).Return(nil).Once()

	require.NoError(t, f.svc.Logout(ctx, "refresh-token"))
	f.sessions.AssertExpectations(t)
}
