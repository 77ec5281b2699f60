package billing

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gymdesk/backend/internal/domain/billing"
	"github.com/gymdesk/backend/internal/domain/membership"
)

type callbackFixture struct {
	gateway     *MockPaymentGateway
	paymentRepo *MockPaymentRepository
	memberRepo  *MockMemberRepository
	planRepo    *MockPlanRepository
	store       *fakeIdempotencyStore
	service     *PaymentCallbackService
}

func newCallbackFixture(t *testing.T) *callbackFixture {
	t.Helper()
	f := &callbackFixture{
		gateway:     new(MockPaymentGateway),
		paymentRepo: new(MockPaymentRepository),
		memberRepo:  new(MockMemberRepository),
		planRepo:    new(MockPlanRepository),
		store:       newFakeIdempotencyStore(),
	}
	f.service = NewPaymentCallbackService(PaymentCallbackServiceConfig{
		Gateway:          f.gateway,
		PaymentRepo:      f.paymentRepo,
		MemberRepo:       f.memberRepo,
		PlanRepo:         f.planRepo,
		IdempotencyStore: f.store,
	})
	return f
}

func (f *callbackFixture) newPendingGatewayPayment(t *testing.T, plan *membership.Plan, member *membership.Member, gatewayPaymentID string) *billing.Payment {
	t.Helper()
	payment, err := billing.NewPayment(member.ID, plan.ID, plan.Price, billing.PaymentMethodGateway)
	require.NoError(t, err)
	payment.AttachGatewayPaymentID(gatewayPaymentID)
	payment.ClearDomainEvents()
	return payment
}

func newMonthlyPlan(t *testing.T) *membership.Plan {
	t.Helper()
	plan, err := membership.NewPlan("MONTHLY", "Monthly", 1, decimal.NewFromInt(50))
	require.NoError(t, err)
	plan.ClearDomainEvents()
	return plan
}

func newPendingMember(t *testing.T) *membership.Member {
	t.Helper()
	member, err := membership.NewMember("Jane Doe", "jane@example.com", "")
	require.NoError(t, err)
	member.ClearDomainEvents()
	return member
}

func TestProcessCallbackInvalidSignature(t *testing.T) {
	f := newCallbackFixture(t)
	body := []byte(`{"id":"gw-1","status":"paid"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "bad").Return(billing.ErrInvalidSignature)

	result, err := f.service.ProcessCallback(context.Background(), body, "bad")

	assert.ErrorIs(t, err, billing.ErrInvalidSignature)
	assert.Nil(t, result)
	// nothing was touched
	f.paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.memberRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessCallbackMalformedPayload(t *testing.T) {
	f := newCallbackFixture(t)
	body := []byte(`not json`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(nil, billing.ErrMalformedPayload)

	result, err := f.service.ProcessCallback(context.Background(), body, "sig")

	assert.ErrorIs(t, err, billing.ErrMalformedPayload)
	assert.Nil(t, result)
	f.paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessCallbackPaidSettlesAndExtends(t *testing.T) {
	f := newCallbackFixture(t)
	plan := newMonthlyPlan(t)
	member := newPendingMember(t)
	payment := f.newPendingGatewayPayment(t, plan, member, "gw-100")

	body := []byte(`{"id":"gw-100","status":"paid"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(&billing.CallbackNotification{
		GatewayPaymentID: "gw-100",
		GatewayStatus:    "paid",
		MemberID:         member.ID.String(),
	}, nil)
	f.paymentRepo.On("FindByGatewayPaymentID", mock.Anything, "gw-100").Return(payment, nil)
	f.paymentRepo.On("Save", mock.Anything, payment).Return(nil)
	f.planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	f.memberRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	f.memberRepo.On("Save", mock.Anything, member).Return(nil)

	result, err := f.service.ProcessCallback(context.Background(), body, "sig")

	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.True(t, result.MembershipExtended)
	assert.Equal(t, billing.PaymentStatusSuccess, payment.Status)
	assert.Equal(t, membership.MemberStatusActive, member.Status)

	// end date is recomputed from today, not from any prior range
	today := time.Now().Truncate(24 * time.Hour)
	require.NotNil(t, member.EndDate)
	assert.Equal(t, today.AddDate(0, plan.DurationMonths, 0), *member.EndDate)

	f.paymentRepo.AssertExpectations(t)
	f.memberRepo.AssertExpectations(t)
}

func TestProcessCallbackReplayAcknowledgedOnce(t *testing.T) {
	f := newCallbackFixture(t)
	plan := newMonthlyPlan(t)
	member := newPendingMember(t)
	payment := f.newPendingGatewayPayment(t, plan, member, "gw-200")

	body := []byte(`{"id":"gw-200","status":"paid"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(&billing.CallbackNotification{
		GatewayPaymentID: "gw-200",
		GatewayStatus:    "paid",
		MemberID:         member.ID.String(),
	}, nil)
	f.paymentRepo.On("FindByGatewayPaymentID", mock.Anything, "gw-200").Return(payment, nil)
	f.paymentRepo.On("Save", mock.Anything, payment).Return(nil)
	f.planRepo.On("FindByID", mock.Anything, plan.ID).Return(plan, nil)
	f.memberRepo.On("FindByID", mock.Anything, member.ID).Return(member, nil)
	f.memberRepo.On("Save", mock.Anything, member).Return(nil)

	first, err := f.service.ProcessCallback(context.Background(), body, "sig")
	require.NoError(t, err)
	assert.False(t, first.AlreadyProcessed)

	second, err := f.service.ProcessCallback(context.Background(), body, "sig")
	require.NoError(t, err)
	assert.True(t, second.Received)
	assert.True(t, second.AlreadyProcessed)

	// settlement and extension ran exactly once
	f.paymentRepo.AssertNumberOfCalls(t, "Save", 1)
	f.memberRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestProcessCallbackFailedStatusNoExtension(t *testing.T) {
	f := newCallbackFixture(t)
	plan := newMonthlyPlan(t)
	member := newPendingMember(t)
	payment := f.newPendingGatewayPayment(t, plan, member, "gw-300")

	body := []byte(`{"id":"gw-300","status":"cancelled"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(&billing.CallbackNotification{
		GatewayPaymentID: "gw-300",
		GatewayStatus:    "cancelled",
		MemberID:         member.ID.String(),
	}, nil)
	f.paymentRepo.On("FindByGatewayPaymentID", mock.Anything, "gw-300").Return(payment, nil)
	f.paymentRepo.On("Save", mock.Anything, payment).Return(nil)

	result, err := f.service.ProcessCallback(context.Background(), body, "sig")

	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.False(t, result.MembershipExtended)
	assert.Equal(t, billing.PaymentStatusFailed, payment.Status)
	f.memberRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessCallbackUnknownStatusLeavesPaymentPending(t *testing.T) {
	f := newCallbackFixture(t)

	body := []byte(`{"id":"gw-400","status":"processing"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(&billing.CallbackNotification{
		GatewayPaymentID: "gw-400",
		GatewayStatus:    "processing",
	}, nil)

	result, err := f.service.ProcessCallback(context.Background(), body, "sig")

	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.Equal(t, billing.PaymentStatusPending, result.PaymentStatus)
	f.paymentRepo.AssertNotCalled(t, "FindByGatewayPaymentID", mock.Anything, mock.Anything)
	f.paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessCallbackPlanMissingStillAcknowledges(t *testing.T) {
	f := newCallbackFixture(t)
	plan := newMonthlyPlan(t)
	member := newPendingMember(t)
	payment := f.newPendingGatewayPayment(t, plan, member, "gw-500")

	body := []byte(`{"id":"gw-500","status":"paid"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(&billing.CallbackNotification{
		GatewayPaymentID: "gw-500",
		GatewayStatus:    "paid",
		MemberID:         member.ID.String(),
	}, nil)
	f.paymentRepo.On("FindByGatewayPaymentID", mock.Anything, "gw-500").Return(payment, nil)
	f.paymentRepo.On("Save", mock.Anything, payment).Return(nil)
	f.planRepo.On("FindByID", mock.Anything, plan.ID).Return(nil, membership.ErrPlanNotFound)

	result, err := f.service.ProcessCallback(context.Background(), body, "sig")

	// payment settles; the extension silently no-ops
	require.NoError(t, err)
	assert.True(t, result.Received)
	assert.False(t, result.MembershipExtended)
	assert.Equal(t, billing.PaymentStatusSuccess, payment.Status)
	f.memberRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessCallbackPaymentNotFoundStillAcknowledges(t *testing.T) {
	f := newCallbackFixture(t)

	body := []byte(`{"id":"gw-600","status":"paid"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(&billing.CallbackNotification{
		GatewayPaymentID: "gw-600",
		GatewayStatus:    "paid",
	}, nil)
	f.paymentRepo.On("FindByGatewayPaymentID", mock.Anything, "gw-600").Return(nil, billing.ErrPaymentNotFound)

	result, err := f.service.ProcessCallback(context.Background(), body, "sig")

	require.NoError(t, err)
	assert.True(t, result.Received)
	f.memberRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestProcessCallbackAlreadySettledPaymentNotReapplied(t *testing.T) {
	f := newCallbackFixture(t)
	plan := newMonthlyPlan(t)
	member := newPendingMember(t)
	payment := f.newPendingGatewayPayment(t, plan, member, "gw-700")
	require.NoError(t, payment.MarkSuccess())
	payment.ClearDomainEvents()

	body := []byte(`{"id":"gw-700","status":"paid"}`)
	f.gateway.On("VerifyCallback", mock.Anything, body, "sig").Return(nil)
	f.gateway.On("ParseCallback", mock.Anything, body).Return(&billing.CallbackNotification{
		GatewayPaymentID: "gw-700",
		GatewayStatus:    "paid",
		MemberID:         member.ID.String(),
	}, nil)
	f.paymentRepo.On("FindByGatewayPaymentID", mock.Anything, "gw-700").Return(payment, nil)

	result, err := f.service.ProcessCallback(context.Background(), body, "sig")

	require.NoError(t, err)
	assert.True(t, result.Received)
	f.paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.memberRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
