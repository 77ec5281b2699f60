package billing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gymdesk/backend/internal/domain/billing"
	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// PaymentCallbackService processes inbound gateway webhooks. It is the
// only path that extends a member's subscription: on a successful
// settlement the member's plan term is recomputed from today.
type PaymentCallbackService struct {
	gateway          billing.PaymentGateway
	paymentRepo      billing.PaymentRepository
	memberRepo       membership.MemberRepository
	planRepo         membership.PlanRepository
	eventPublisher   shared.EventPublisher
	idempotencyStore shared.IdempotencyStore
	idempotencyTTL   time.Duration
	logger           *zap.Logger
}

// PaymentCallbackServiceConfig holds configuration for the callback service
type PaymentCallbackServiceConfig struct {
	Gateway          billing.PaymentGateway
	PaymentRepo      billing.PaymentRepository
	MemberRepo       membership.MemberRepository
	PlanRepo         membership.PlanRepository
	EventPublisher   shared.EventPublisher
	IdempotencyStore shared.IdempotencyStore
	IdempotencyTTL   time.Duration
	Logger           *zap.Logger
}

// NewPaymentCallbackService creates a new PaymentCallbackService
func NewPaymentCallbackService(config PaymentCallbackServiceConfig) *PaymentCallbackService {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ttl := config.IdempotencyTTL
	if ttl == 0 {
		ttl = shared.DefaultIdempotencyConfig().TTL
	}
	return &PaymentCallbackService{
		gateway:          config.Gateway,
		paymentRepo:      config.PaymentRepo,
		memberRepo:       config.MemberRepo,
		planRepo:         config.PlanRepo,
		eventPublisher:   config.EventPublisher,
		idempotencyStore: config.IdempotencyStore,
		idempotencyTTL:   ttl,
		logger:           logger,
	}
}

// CallbackResult reports the outcome of processing a gateway callback
type CallbackResult struct {
	Received           bool                  `json:"received"`
	AlreadyProcessed   bool                  `json:"-"`
	PaymentStatus      billing.PaymentStatus `json:"-"`
	MembershipExtended bool                  `json:"-"`
}

// ProcessCallback verifies, parses and applies a gateway webhook.
//
// Signature and parse failures are returned as errors so the handler
// can reject with 400. Once the payload is authenticated and parsed,
// downstream failures are logged and swallowed and the gateway still
// gets an acknowledgement, so it never retries a callback we have
// already accepted.
func (s *PaymentCallbackService) ProcessCallback(ctx context.Context, body []byte, signature string) (*CallbackResult, error) {
	if err := s.gateway.VerifyCallback(ctx, body, signature); err != nil {
		s.logger.Warn("Callback signature verification failed",
			zap.String("gateway", s.gateway.Name()),
			zap.Error(err))
		return nil, err
	}

	notification, err := s.gateway.ParseCallback(ctx, body)
	if err != nil {
		s.logger.Warn("Callback payload rejected",
			zap.String("gateway", s.gateway.Name()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Payment callback received",
		zap.String("gateway", s.gateway.Name()),
		zap.String("gateway_payment_id", notification.GatewayPaymentID),
		zap.String("gateway_status", notification.GatewayStatus))

	// Replayed deliveries are acknowledged without reapplying the
	// membership extension.
	idempotencyKey := fmt.Sprintf("callback:%s:%s", s.gateway.Name(), notification.GatewayPaymentID)
	if s.idempotencyStore != nil {
		fresh, err := s.idempotencyStore.MarkProcessed(ctx, idempotencyKey, s.idempotencyTTL)
		if err != nil {
			s.logger.Error("Idempotency check failed, processing anyway", zap.Error(err))
		} else if !fresh {
			s.logger.Info("Callback already processed",
				zap.String("idempotency_key", idempotencyKey))
			return &CallbackResult{Received: true, AlreadyProcessed: true}, nil
		}
	}

	result := &CallbackResult{Received: true}
	if err := s.applyCallback(ctx, notification, result); err != nil {
		// Acknowledge anyway; a retry storm will not fix a
		// payment we cannot find or settle.
		s.logger.Error("Failed to apply payment callback",
			zap.String("gateway_payment_id", notification.GatewayPaymentID),
			zap.Error(err))
	}
	return result, nil
}

func (s *PaymentCallbackService) applyCallback(ctx context.Context, notification *billing.CallbackNotification, result *CallbackResult) error {
	mapped := billing.MapGatewayStatus(notification.GatewayStatus)
	result.PaymentStatus = mapped
	if mapped == billing.PaymentStatusPending {
		s.logger.Info("Gateway status not terminal, leaving payment pending",
			zap.String("gateway_status", notification.GatewayStatus))
		return nil
	}

	payment, err := s.paymentRepo.FindByGatewayPaymentID(ctx, notification.GatewayPaymentID)
	if err != nil {
		if err == shared.ErrNotFound {
			return billing.ErrPaymentNotFound
		}
		return fmt.Errorf("failed to find payment: %w", err)
	}

	if payment.IsSettled() {
		s.logger.Info("Payment already settled",
			zap.String("payment_id", payment.ID.String()),
			zap.String("status", string(payment.Status)))
		return nil
	}

	switch mapped {
	case billing.PaymentStatusSuccess:
		err = payment.MarkSuccess()
	case billing.PaymentStatusFailed:
		err = payment.MarkFailed(notification.GatewayStatus)
	}
	if err != nil {
		return err
	}

	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}

	s.logger.Info("Payment settled via gateway callback",
		zap.String("payment_id", payment.ID.String()),
		zap.String("status", string(payment.Status)))

	if mapped == billing.PaymentStatusSuccess {
		if err := s.extendMembership(ctx, payment, result); err != nil {
			// The payment stays settled; the extension is logged
			// and skipped rather than rolled back.
			s.logger.Error("Membership extension skipped",
				zap.String("payment_id", payment.ID.String()),
				zap.Error(err))
		}
	}

	s.publishEvents(ctx, payment)
	return nil
}

// extendMembership recomputes the member's term from today using the
// plan on the payment. Renewal resets the range rather than stacking
// onto any remaining time.
func (s *PaymentCallbackService) extendMembership(ctx context.Context, payment *billing.Payment, result *CallbackResult) error {
	plan, err := s.planRepo.FindByID(ctx, payment.PlanID)
	if err != nil {
		if err == shared.ErrNotFound {
			return membership.ErrPlanNotFound
		}
		return fmt.Errorf("failed to find plan: %w", err)
	}

	member, err := s.memberRepo.FindByID(ctx, payment.MemberID)
	if err != nil {
		if err == shared.ErrNotFound {
			return membership.ErrMemberNotFound
		}
		return fmt.Errorf("failed to find member: %w", err)
	}

	startDate := time.Now().Truncate(24 * time.Hour)
	endDate, err := membership.MembershipEndDate(startDate, plan)
	if err != nil {
		return err
	}

	if err := member.Subscribe(plan, startDate, endDate); err != nil {
		return err
	}
	if err := s.memberRepo.Save(ctx, member); err != nil {
		return fmt.Errorf("failed to save member: %w", err)
	}

	result.MembershipExtended = true
	s.logger.Info("Membership extended via gateway callback",
		zap.String("member_id", member.ID.String()),
		zap.String("plan_code", plan.Code),
		zap.Time("end_date", endDate))

	if s.eventPublisher != nil {
		if events := member.GetDomainEvents(); len(events) > 0 {
			if err := s.eventPublisher.Publish(ctx, events...); err != nil {
				s.logger.Warn("Failed to publish member events", zap.Error(err))
			}
			member.ClearDomainEvents()
		}
	}
	return nil
}

func (s *PaymentCallbackService) publishEvents(ctx context.Context, payment *billing.Payment) {
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
