package identity

import (
	"context"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// UserRepository defines the persistence interface for users
type UserRepository interface {
	shared.Repository[User]

	// FindByEmail finds a user by email address
	FindByEmail(ctx context.Context, email string) (*User, error)
}
