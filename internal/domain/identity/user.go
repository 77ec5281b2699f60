package identity

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Role represents an authorization role claim
type Role string

// Roles. Admin can manage every resource; staff is limited to
// front-desk operations such as check-ins and member lookups.
const (
	RoleAdmin Role = "admin"
	RoleStaff Role = "staff"
)

// User-specific errors
var (
	ErrUserNotFound       = shared.NewDomainError("USER_NOT_FOUND", "User not found")
	ErrUserEmailRequired  = shared.NewDomainError("USER_EMAIL_REQUIRED", "User email is required")
	ErrUserEmailExists    = shared.NewDomainError("USER_EMAIL_EXISTS", "A user with this email already exists")
	ErrPasswordTooShort   = shared.NewDomainError("PASSWORD_TOO_SHORT", "Password must be at least 8 characters")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrInvalidRole        = shared.NewDomainError("INVALID_ROLE", "Role must be admin or staff")
	ErrUserDisabled       = shared.NewDomainError("USER_DISABLED", "User account is disabled")
)

const minPasswordLength = 8

// User is a dashboard account with a role claim used by the
// authorization gate
type User struct {
	shared.BaseAggregateRoot
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	Enabled      bool
}

// ValidRole reports whether the role is a known role
func ValidRole(role Role) bool {
	return role == RoleAdmin || role == RoleStaff
}

// NewUser creates a new user with a hashed password
func NewUser(email, name, password string, role Role) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrUserEmailRequired
	}
	if len(password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if !ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Email:             email,
		Name:              strings.TrimSpace(name),
		PasswordHash:      string(hash),
		Role:              role,
		Enabled:           true,
	}

	user.AddDomainEvent(NewUserCreatedEvent(user))
	return user, nil
}

// CheckPassword verifies a plaintext password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.IncrementVersion()
	return nil
}

// Disable locks the account out
func (u *User) Disable() {
	if !u.Enabled {
		return
	}
	u.Enabled = false
	u.IncrementVersion()
	u.AddDomainEvent(NewUserDisabledEvent(u))
}

// HasRole reports whether the user carries the required role.
// Admins satisfy every role requirement.
func (u *User) HasRole(required Role) bool {
	return u.Role == RoleAdmin || u.Role == required
}
