package access

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/backend/internal/domain/access"
	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// MockMemberRepository is a mock implementation of membership.MemberRepository
type MockMemberRepository struct {
	mock.Mock
}

func (m *MockMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Member, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.Member), args.Error(1)
}

func (m *MockMemberRepository) Save(ctx context.Context, member *membership.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMemberRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMemberRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMemberRepository) FindByEmail(ctx context.Context, email string) (*membership.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*membership.Member), args.Error(1)
}

func (m *MockMemberRepository) FindByStatus(ctx context.Context, status membership.MemberStatus, filter shared.Filter) ([]membership.Member, error) {
	args := m.Called(ctx, status, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.Member), args.Error(1)
}

func (m *MockMemberRepository) FindExpiring(ctx context.Context, before time.Time) ([]membership.Member, error) {
	args := m.Called(ctx, before)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]membership.Member), args.Error(1)
}

// MockAccessLogRepository is a mock implementation of access.AccessLogRepository
type MockAccessLogRepository struct {
	mock.Mock
}

func (m *MockAccessLogRepository) Save(ctx context.Context, log *access.AccessLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAccessLogRepository) FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]access.AccessLog, error) {
	args := m.Called(ctx, memberID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]access.AccessLog), args.Error(1)
}

func (m *MockAccessLogRepository) FindBetween(ctx context.Context, from, to time.Time, filter shared.Filter) ([]access.AccessLog, error) {
	args := m.Called(ctx, from, to, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]access.AccessLog), args.Error(1)
}

func activeMember(t *testing.T) *membership.Member {
	t.Helper()
	member, err := membership.NewMember("Front Desk", "desk@example.com", "")
	require.NoError(t, err)

	plan, err := membership.NewPlan("MONTHLY", "Monthly", 1, decimal.NewFromInt(49))
	require.NoError(t, err)
	now := time.Now()
	require.NoError(t, member.Subscribe(plan, now.AddDate(0, 0, -7), now.AddDate(0, 0, 21)))
	return member
}

func TestCheckInService_Granted(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	logRepo := new(MockAccessLogRepository)
	service := NewCheckInService(memberRepo, logRepo, nil)

	member := activeMember(t)
	memberRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)

	var saved *access.AccessLog
	logRepo.On("Save", mock.Anything, mock.AnythingOfType("*access.AccessLog")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*access.AccessLog)
		}).
		Return(nil)

	resp, err := service.CheckIn(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, access.ResultGranted, resp.Result)
	assert.Empty(t, resp.Reason)

	require.NotNil(t, saved)
	assert.Equal(t, member.ID, saved.MemberID)
	assert.Equal(t, access.ResultGranted, saved.Result)
	assert.Empty(t, saved.Reason)
}

func TestCheckInService_DeniedExpired(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	logRepo := new(MockAccessLogRepository)
	service := NewCheckInService(memberRepo, logRepo, nil)

	member := activeMember(t)
	member.Expire()
	memberRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)

	var saved *access.AccessLog
	logRepo.On("Save", mock.Anything, mock.AnythingOfType("*access.AccessLog")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*access.AccessLog)
		}).
		Return(nil)

	resp, err := service.CheckIn(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, access.ResultDenied, resp.Result)
	assert.Equal(t, shared.ErrMembershipInactive.Message, resp.Reason)

	// The denied attempt is still logged, with the denial reason
	require.NotNil(t, saved)
	assert.Equal(t, access.ResultDenied, saved.Result)
	assert.Equal(t, shared.ErrMembershipInactive.Message, saved.Reason)
}

func TestCheckInService_DeniedPending(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	logRepo := new(MockAccessLogRepository)
	service := NewCheckInService(memberRepo, logRepo, nil)

	member, err := membership.NewMember("No Sub", "nosub@example.com", "")
	require.NoError(t, err)
	memberRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	logRepo.On("Save", mock.Anything, mock.AnythingOfType("*access.AccessLog")).Return(nil)

	resp, err := service.CheckIn(context.Background(), member.ID)
	require.NoError(t, err)
	assert.Equal(t, access.ResultDenied, resp.Result)
	assert.Equal(t, shared.ErrMembershipInactive.Message, resp.Reason)
}

func TestCheckInService_MemberNotFound(t *testing.T) {
	memberRepo := new(MockMemberRepository)
	logRepo := new(MockAccessLogRepository)
	service := NewCheckInService(memberRepo, logRepo, nil)

	memberRepo.On("FindByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).
		Return(nil, shared.ErrNotFound)

	_, err := service.CheckIn(context.Background(), uuid.New())
	assert.ErrorIs(t, err, membership.ErrMemberNotFound)
	logRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
