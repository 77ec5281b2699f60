package identity

import (
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/identity"
)

// LoginRequest is the input for authentication
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest is the input for refreshing an access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateUserRequest is the input for creating a dashboard account
type CreateUserRequest struct {
	Email    string        `json:"email" binding:"required,email"`
	Name     string        `json:"name" binding:"required"`
	Password string        `json:"password" binding:"required,min=8"`
	Role     identity.Role `json:"role" binding:"required"`
}

// TokenResponse carries an issued token pair
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresAt    time.Time    `json:"expires_at"`
	User         UserResponse `json:"user"`
}

// UserResponse is the API representation of a user
type UserResponse struct {
	ID      uuid.UUID     `json:"id"`
	Email   string        `json:"email"`
	Name    string        `json:"name"`
	Role    identity.Role `json:"role"`
	Enabled bool          `json:"enabled"`
}

// NewUserResponse converts a user aggregate to its API representation
func NewUserResponse(user *identity.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		Enabled: user.Enabled,
	}
}
