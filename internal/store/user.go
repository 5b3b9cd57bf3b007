package store

import (
	"context"

	"github.com/phrazzld/market-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The user must already carry a hashed password.
	// Returns ErrEmailExists if the email is already taken.
	// On success the store-maintained timestamps are written back into user.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
