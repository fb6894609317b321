package user

import "context"

// Service handles registration and credential checks.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies the credentials and returns a signed access token.
	// A missing user and a wrong password both fail with
	// ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
}
