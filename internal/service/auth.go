package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/storeline/storeline-server/internal/logger"
	"github.com/storeline/storeline-server/internal/model"
)

// Auth orchestrates signup, login, and logout over the credential
// store, the password hasher, and the session service.
type Auth struct {
	userStore model.UserStore
	hasher    model.PasswordHasher
	sessions  *Session
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	sessions *Session,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		sessions:  sessions,
		logger:    logger,
	}
}

// SignUp creates a new user identity and opens its first session.
// Hashing happens here, before the store create; the credential store
// never sees a plaintext password.
func (a *Auth) SignUp(ctx context.Context, fullName, email, password string) (model.UserInfo, model.TokenPair, error) {
	email = model.NormalizeEmail(email)

	a.logger.Debug("Auth service: starting signup", "email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists", "email", email)
		return model.UserInfo{}, model.TokenPair{}, model.ErrEmailTaken
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.UserInfo{}, model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(password)
	if err != nil {
		return model.UserInfo{}, model.TokenPair{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.UserInfo{}, model.TokenPair{}, fmt.Errorf("failed to create user: %w", err)
	}

	// Identity creation and session registration are not transactional.
	// A failure here leaves a valid identity with no active session,
	// which only forces a subsequent login.
	pair, err := a.sessions.Issue(ctx, saved.ID)
	if err != nil {
		return model.UserInfo{}, model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: signup completed",
		"email", email,
		"user_id", saved.ID)

	return saved.Info(), pair, nil
}

// Login verifies credentials and opens a new session, superseding any
// prior one for the same user. Unknown email and wrong password take
// the same exit so the response shape cannot be used for user
// enumeration.
func (a *Auth) Login(ctx context.Context, email, password string) (model.UserInfo, model.TokenPair, error) {
	email = model.NormalizeEmail(email)

	a.logger.Debug("Auth service: starting login", "email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.UserInfo{}, model.TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.UserInfo{}, model.TokenPair{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return model.UserInfo{}, model.TokenPair{}, model.ErrInvalidCredentials
	}

	pair, err := a.sessions.Issue(ctx, user.ID)
	if err != nil {
		return model.UserInfo{}, model.TokenPair{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"email", email,
		"user_id", user.ID)

	return user.Info(), pair, nil
}

// Logout revokes the session behind the presented refresh token.
// Best-effort and idempotent: a missing or unverifiable token still
// succeeds.
func (a *Auth) Logout(ctx context.Context, refreshToken string) error {
	return a.sessions.Revoke(ctx, refreshToken)
}
