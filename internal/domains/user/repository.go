package user

import "context"

// Repository defines user data access.
type Repository interface {
	// Create inserts the user and fills in the generated ID. Unique
	// violations surface as ErrUsernameTaken or ErrEmailTaken.
	Create(ctx context.Context, u *User) error

	// GetByUsername returns ErrUserNotFound if no such user exists.
	GetByUsername(ctx context.Context, username string) (*User, error)
}
