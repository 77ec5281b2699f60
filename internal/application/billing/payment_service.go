package billing

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gymdesk/backend/internal/domain/billing"
	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// PaymentService handles payment recording and the manual settlement
// path. Manual settlement updates the payment row only; it never
// touches the member's subscription. Membership extension happens
// exclusively on the gateway callback path.
type PaymentService struct {
	paymentRepo    billing.PaymentRepository
	memberRepo     membership.MemberRepository
	planRepo       membership.PlanRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo billing.PaymentRepository,
	memberRepo membership.MemberRepository,
	planRepo membership.PlanRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *PaymentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentService{
		paymentRepo:    paymentRepo,
		memberRepo:     memberRepo,
		planRepo:       planRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Create records a pending payment for a member
func (s *PaymentService) Create(ctx context.Context, req CreatePaymentRequest) (*PaymentResponse, error) {
	if _, err := s.memberRepo.FindByID(ctx, req.MemberID); err != nil {
		if err == shared.ErrNotFound {
			return nil, membership.ErrMemberNotFound
		}
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, req.PlanID); err != nil {
		if err == shared.ErrNotFound {
			return nil, membership.ErrPlanNotFound
		}
		return nil, err
	}

	payment, err := billing.NewPayment(req.MemberID, req.PlanID, req.Amount, req.Method)
	if err != nil {
		return nil, err
	}
	if req.GatewayPaymentID != "" {
		payment.AttachGatewayPaymentID(req.GatewayPaymentID)
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, payment)
	return NewPaymentResponse(payment), nil
}

// Get returns a payment by id
func (s *PaymentService) Get(ctx context.Context, id uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPaymentResponse(payment), nil
}

// List returns payments matching the filter
func (s *PaymentService) List(ctx context.Context, filter shared.Filter) ([]PaymentResponse, int64, error) {
	payments, err := s.paymentRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.paymentRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *NewPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// ListByMember returns payments belonging to a member
func (s *PaymentService) ListByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]PaymentResponse, error) {
	payments, err := s.paymentRepo.FindByMember(ctx, memberID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *NewPaymentResponse(&payments[i])
	}
	return responses, nil
}

// UpdateStatus settles a payment from the admin dashboard. This path
// deliberately does not extend the member's subscription; only the
// gateway callback drives that side effect.
func (s *PaymentService) UpdateStatus(ctx context.Context, id uuid.UUID, req UpdatePaymentStatusRequest) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch req.Status {
	case billing.PaymentStatusSuccess:
		err = payment.MarkSuccess()
	case billing.PaymentStatusFailed:
		err = payment.MarkFailed(req.Reason)
	default:
		return nil, billing.ErrPaymentStatusInvalid
	}
	if err != nil {
		return nil, err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment settled manually",
		zap.String("payment_id", payment.ID.String()),
		zap.String("status", string(payment.Status)))

	s.publishEvents(ctx, payment)
	return NewPaymentResponse(payment), nil
}

func (s *PaymentService) publishEvents(ctx context.Context, payment *billing.Payment) {
	if s.eventPublisher == nil {
		return
	}
	if events := payment.GetDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("Failed to publish payment events", zap.Error(err))
		}
		payment.ClearDomainEvents()
	}
}
