package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billingapp "github.com/gymdesk/backend/internal/application/billing"
	"github.com/gymdesk/backend/internal/domain/billing"
	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
	"github.com/gymdesk/backend/internal/infrastructure/cache"
	"github.com/gymdesk/backend/internal/infrastructure/payment"
	"github.com/gymdesk/backend/internal/interfaces/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubPaymentRepo keeps payments in memory keyed by gateway id
type stubPaymentRepo struct {
	payments  map[string]*billing.Payment
	saveCount int
}

func (r *stubPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Payment, error) {
	return nil, shared.ErrNotFound
}

func (r *stubPaymentRepo) FindAll(ctx context.Context, filter shared.Filter) ([]billing.Payment, error) {
	return nil, nil
}

func (r *stubPaymentRepo) Save(ctx context.Context, p *billing.Payment) error {
	r.saveCount++
	r.payments[p.GatewayPaymentID] = p
	return nil
}

func (r *stubPaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return shared.ErrNotFound
}

func (r *stubPaymentRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return int64(len(r.payments)), nil
}

func (r *stubPaymentRepo) FindByGatewayPaymentID(ctx context.Context, gatewayPaymentID string) (*billing.Payment, error) {
	p, ok := r.payments[gatewayPaymentID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return p, nil
}

func (r *stubPaymentRepo) FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]billing.Payment, error) {
	return nil, nil
}

func (r *stubPaymentRepo) FindByStatus(ctx context.Context, status billing.PaymentStatus, filter shared.Filter) ([]billing.Payment, error) {
	return nil, nil
}

// stubMemberRepo holds a single member
type stubMemberRepo struct {
	member *membership.Member
}

func (r *stubMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*membership.Member, error) {
	if r.member == nil || r.member.ID != id {
		return nil, shared.ErrNotFound
	}
	return r.member, nil
}

func (r *stubMemberRepo) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Member, error) {
	return nil, nil
}

func (r *stubMemberRepo) Save(ctx context.Context, m *membership.Member) error {
	r.member = m
	return nil
}

func (r *stubMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return shared.ErrNotFound
}

func (r *stubMemberRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return 0, nil
}

func (r *stubMemberRepo) FindByEmail(ctx context.Context, email string) (*membership.Member, error) {
	return nil, shared.ErrNotFound
}

func (r *stubMemberRepo) FindByStatus(ctx context.Context, status membership.MemberStatus, filter shared.Filter) ([]membership.Member, error) {
	return nil, nil
}

func (r *stubMemberRepo) FindExpiring(ctx context.Context, before time.Time) ([]membership.Member, error) {
	return nil, nil
}

// stubPlanRepo holds a single plan
type stubPlanRepo struct {
	plan *membership.Plan
}

func (r *stubPlanRepo) FindByID(ctx context.Context, id uuid.UUID) (*membership.Plan, error) {
	if r.plan == nil || r.plan.ID != id {
		return nil, shared.ErrNotFound
	}
	return r.plan, nil
}

func (r *stubPlanRepo) FindAll(ctx context.Context, filter shared.Filter) ([]membership.Plan, error) {
	return nil, nil
}

func (r *stubPlanRepo) Save(ctx context.Context, p *membership.Plan) error {
	r.plan = p
	return nil
}

func (r *stubPlanRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return shared.ErrNotFound
}

func (r *stubPlanRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	return 0, nil
}

func (r *stubPlanRepo) FindByCode(ctx context.Context, code string) (*membership.Plan, error) {
	return nil, shared.ErrNotFound
}

func (r *stubPlanRepo) FindByName(ctx context.Context, name string) (*membership.Plan, error) {
	return nil, shared.ErrNotFound
}

func (r *stubPlanRepo) FindActive(ctx context.Context) ([]membership.Plan, error) {
	return nil, nil
}

type callbackFixture struct {
	engine      *gin.Engine
	gateway     *payment.HMACGateway
	paymentRepo *stubPaymentRepo
	memberRepo  *stubMemberRepo
	planRepo    *stubPlanRepo
}

func newCallbackFixture(t *testing.T) *callbackFixture {
	t.Helper()

	plan, err := membership.NewPlan("MONTHLY", "Monthly", 1, decimal.NewFromInt(49))
	require.NoError(t, err)
	member, err := membership.NewMember("Sam Doe", "sam@example.com", "")
	require.NoError(t, err)

	pending, err := billing.NewPayment(member.ID, plan.ID, decimal.NewFromInt(49), billing.PaymentMethodGateway)
	require.NoError(t, err)
	pending.GatewayPaymentID = "pay_123"

	f := &callbackFixture{
		gateway:     payment.NewHMACGateway("gympay", "test-webhook-secret"),
		paymentRepo: &stubPaymentRepo{payments: map[string]*billing.Payment{"pay_123": pending}},
		memberRepo:  &stubMemberRepo{member: member},
		planRepo:    &stubPlanRepo{plan: plan},
	}

	svc := billingapp.NewPaymentCallbackService(billingapp.PaymentCallbackServiceConfig{
		Gateway:          f.gateway,
		PaymentRepo:      f.paymentRepo,
		MemberRepo:       f.memberRepo,
		PlanRepo:         f.planRepo,
		IdempotencyStore: cache.NewInMemoryIdempotencyStore(),
	})

	f.engine = gin.New()
	f.engine.POST("/api/v1/payments/callback", NewPaymentCallbackHandler(svc).HandleCallback)
	return f
}

func (f *callbackFixture) post(body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments/callback", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func successBody(gatewayID, memberID string) []byte {
	return []byte(fmt.Sprintf(`{"id":%q,"status":"paid","metadata":{"member_id":%q}}`, gatewayID, memberID))
}

func TestHandleCallback_Success(t *testing.T) {
	f := newCallbackFixture(t)
	body := successBody("pay_123", f.memberRepo.member.ID.String())

	w := f.post(body, f.gateway.Sign(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())

	settled := f.paymentRepo.payments["pay_123"]
	assert.Equal(t, billing.PaymentStatusSuccess, settled.Status)
	assert.Equal(t, membership.MemberStatusActive, f.memberRepo.member.Status)
	require.NotNil(t, f.memberRepo.member.EndDate)
}

func TestHandleCallback_InvalidSignature(t *testing.T) {
	f := newCallbackFixture(t)
	body := successBody("pay_123", f.memberRepo.member.ID.String())

	w := f.post(body, "deadbeef")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_SIGNATURE", resp.Error.Code)

	// No mutation on rejected deliveries
	assert.Equal(t, billing.PaymentStatusPending, f.paymentRepo.payments["pay_123"].Status)
	assert.Zero(t, f.paymentRepo.saveCount)
}

func TestHandleCallback_MissingSignature(t *testing.T) {
	f := newCallbackFixture(t)
	body := successBody("pay_123", f.memberRepo.member.ID.String())

	w := f.post(body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleCallback_MalformedPayload(t *testing.T) {
	f := newCallbackFixture(t)
	body := []byte(`{"id": "pay_123", "status":`)

	w := f.post(body, f.gateway.Sign(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MALFORMED_PAYLOAD", resp.Error.Code)
}

func TestHandleCallback_MissingFields(t *testing.T) {
	f := newCallbackFixture(t)
	body := []byte(`{"id":"pay_123","status":"paid","metadata":{}}`)

	w := f.post(body, f.gateway.Sign(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "MISSING_FIELDS", resp.Error.Code)
}

func TestHandleCallback_Replay(t *testing.T) {
	f := newCallbackFixture(t)
	body := successBody("pay_123", f.memberRepo.member.ID.String())
	sig := f.gateway.Sign(body)

	first := f.post(body, sig)
	require.Equal(t, http.StatusOK, first.Code)
	savesAfterFirst := f.paymentRepo.saveCount

	second := f.post(body, sig)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, `{"received": true}`, second.Body.String())

	// The replay is acknowledged without touching the payment again
	assert.Equal(t, savesAfterFirst, f.paymentRepo.saveCount)
}

func TestHandleCallback_UnknownPlanStillAcknowledged(t *testing.T) {
	f := newCallbackFixture(t)
	f.planRepo.plan = nil
	body := successBody("pay_123", f.memberRepo.member.ID.String())

	w := f.post(body, f.gateway.Sign(body))

	// The payment settles and the delivery is acknowledged even though
	// the membership extension could not be applied.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received": true}`, w.Body.String())
	assert.Equal(t, billing.PaymentStatusSuccess, f.paymentRepo.payments["pay_123"].Status)
	assert.Equal(t, membership.MemberStatusPending, f.memberRepo.member.Status)
}
