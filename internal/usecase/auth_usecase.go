// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fileauth/internal/domain/entity"
)

// TokenTypeBearer is the token_type reported for issued access tokens.
const TokenTypeBearer = "Bearer"

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username   string
	Password   string
	RemoteAddr string // Client address, recorded in audit events only.
}

// LogoutInput identifies the session owner being logged out.
type LogoutInput struct {
	Username   string
	RemoteAddr string
}

// --- Output DTOs ---

// LoginOutput returns the generated token after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // Token lifetime in seconds.
	User        *entity.User
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login verifies credentials and issues an access token. Every credential
	// failure returns the same ErrInvalidCredentials.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout records the end of a browser session. Tokens are stateless and stay
	// valid until they expire.
	Logout(ctx context.Context, input LogoutInput)
}
