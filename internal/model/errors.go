package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching row or entry exists.
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken is returned on signup when the normalized email is
	// already registered.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenMissing is returned when no refresh token was presented.
	ErrTokenMissing = errors.New("no refresh token provided")

	// ErrTokenInvalid covers bad signature, expiry, and registry mismatch.
	ErrTokenInvalid = errors.New("invalid refresh token")
)
