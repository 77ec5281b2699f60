package identity

import "github.com/gymdesk/backend/internal/domain/shared"

// User event types
const (
	EventTypeUserCreated  = "user.created"
	EventTypeUserDisabled = "user.disabled"
)

// UserCreatedEvent is raised when a new dashboard account is created
type UserCreatedEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// NewUserCreatedEvent creates a new user created event
func NewUserCreatedEvent(user *User) *UserCreatedEvent {
	return &UserCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserCreated, "User", user.ID),
		Email:           user.Email,
		Role:            user.Role,
	}
}

// UserDisabledEvent is raised when an account is locked out
type UserDisabledEvent struct {
	shared.BaseDomainEvent
	Email string `json:"email"`
}

// NewUserDisabledEvent creates a new user disabled event
func NewUserDisabledEvent(user *User) *UserDisabledEvent {
	return &UserDisabledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserDisabled, "User", user.ID),
		Email:           user.Email,
	}
}
