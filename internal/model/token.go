package model

import "github.com/google/uuid"

// TokenPair is the credential pair handed to a caller on signup and
// login. Neither token is persisted beyond the session registry entry
// for the refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenManager generates and validates access/refresh tokens. The two
// token classes are signed with distinct secrets, so a token of one
// class never parses as the other.
type TokenManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ParseAccessToken(token string) (uuid.UUID, error)
	ParseRefreshToken(token string) (uuid.UUID, error)
}
