package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/backend/internal/domain/identity"
	"github.com/gymdesk/backend/internal/domain/shared"
	"github.com/gymdesk/backend/internal/infrastructure/auth"
	"github.com/gymdesk/backend/internal/infrastructure/config"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "gymdesk-test",
		MaxRefreshCount:        10,
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("issues token pair for valid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		user, err := identity.NewUser("admin@gym.test", "Admin", "supersecret", identity.RoleAdmin)
		require.NoError(t, err)
		repo.On("FindByEmail", mock.Anything, "admin@gym.test").Return(user, nil)

		service := NewAuthService(repo, newTestJWTService(), nil)
		resp, err := service.Login(context.Background(), LoginRequest{
			Email:    "admin@gym.test",
			Password: "supersecret",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, identity.RoleAdmin, resp.User.Role)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		user, err := identity.NewUser("admin@gym.test", "Admin", "supersecret", identity.RoleAdmin)
		require.NoError(t, err)
		repo.On("FindByEmail", mock.Anything, "admin@gym.test").Return(user, nil)

		service := NewAuthService(repo, newTestJWTService(), nil)
		_, err = service.Login(context.Background(), LoginRequest{
			Email:    "admin@gym.test",
			Password: "wrong-password",
		})
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("unknown email reports invalid credentials", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@gym.test").Return(nil, shared.ErrNotFound)

		service := NewAuthService(repo, newTestJWTService(), nil)
		_, err := service.Login(context.Background(), LoginRequest{
			Email:    "nobody@gym.test",
			Password: "whatever1",
		})
		assert.ErrorIs(t, err, identity.ErrInvalidCredentials)
	})

	t.Run("rejects disabled account", func(t *testing.T) {
		repo := new(MockUserRepository)
		user, err := identity.NewUser("staff@gym.test", "Staff", "supersecret", identity.RoleStaff)
		require.NoError(t, err)
		user.Disable()
		repo.On("FindByEmail", mock.Anything, "staff@gym.test").Return(user, nil)

		service := NewAuthService(repo, newTestJWTService(), nil)
		_, err = service.Login(context.Background(), LoginRequest{
			Email:    "staff@gym.test",
			Password: "supersecret",
		})
		assert.ErrorIs(t, err, identity.ErrUserDisabled)
	})
}

func TestAuthServiceRefresh(t *testing.T) {
	repo := new(MockUserRepository)
	jwtService := newTestJWTService()
	user, err := identity.NewUser("admin@gym.test", "Admin", "supersecret", identity.RoleAdmin)
	require.NoError(t, err)
	repo.On("FindByEmail", mock.Anything, "admin@gym.test").Return(user, nil)
	repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

	service := NewAuthService(repo, jwtService, nil)
	login, err := service.Login(context.Background(), LoginRequest{
		Email:    "admin@gym.test",
		Password: "supersecret",
	})
	require.NoError(t, err)

	refreshed, err := service.Refresh(context.Background(), RefreshRequest{
		RefreshToken: login.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	claims, err := jwtService.ValidateAccessToken(refreshed.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(identity.RoleAdmin), claims.Role)
}

func TestAuthServiceCreateUser(t *testing.T) {
	t.Run("rejects duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		existing, err := identity.NewUser("admin@gym.test", "Admin", "supersecret", identity.RoleAdmin)
		require.NoError(t, err)
		repo.On("FindByEmail", mock.Anything, "admin@gym.test").Return(existing, nil)

		service := NewAuthService(repo, newTestJWTService(), nil)
		_, err = service.CreateUser(context.Background(), CreateUserRequest{
			Email:    "admin@gym.test",
			Name:     "Another Admin",
			Password: "supersecret",
			Role:     identity.RoleAdmin,
		})
		assert.ErrorIs(t, err, identity.ErrUserEmailExists)
	})

	t.Run("creates staff account", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "staff@gym.test").Return(nil, shared.ErrNotFound)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		service := NewAuthService(repo, newTestJWTService(), nil)
		resp, err := service.CreateUser(context.Background(), CreateUserRequest{
			Email:    "staff@gym.test",
			Name:     "Front Desk",
			Password: "supersecret",
			Role:     identity.RoleStaff,
		})
		require.NoError(t, err)
		assert.Equal(t, identity.RoleStaff, resp.Role)
		repo.AssertExpectations(t)
	})
}
