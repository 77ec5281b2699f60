package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gymdesk/backend/internal/domain/billing"
	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/notification"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// PaymentSucceededListener creates a receipt notification whenever a
// payment settles successfully
type PaymentSucceededListener struct {
	service *NotificationService
	logger  *zap.Logger
}

// NewPaymentSucceededListener creates a new PaymentSucceededListener
func NewPaymentSucceededListener(service *NotificationService, logger *zap.Logger) *PaymentSucceededListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentSucceededListener{service: service, logger: logger}
}

// EventTypes returns the event types this listener handles
func (l *PaymentSucceededListener) EventTypes() []string {
	return []string{billing.EventTypePaymentSucceeded}
}

// Handle creates the notification for the paying member
func (l *PaymentSucceededListener) Handle(ctx context.Context, event shared.DomainEvent) error {
	succeeded, ok := event.(*billing.PaymentSucceededEvent)
	if !ok {
		return nil
	}

	message := fmt.Sprintf("We received your payment of %s. Thank you!", succeeded.Amount.StringFixed(2))
	if _, err := l.service.Notify(ctx, succeeded.MemberID, notification.TypePaymentReceived, "Payment received", message); err != nil {
		l.logger.Warn("Failed to create payment notification",
			zap.String("member_id", succeeded.MemberID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

// MemberExpiredListener creates a lapse notification when a membership
// expires
type MemberExpiredListener struct {
	service *NotificationService
	logger  *zap.Logger
}

// NewMemberExpiredListener creates a new MemberExpiredListener
func NewMemberExpiredListener(service *NotificationService, logger *zap.Logger) *MemberExpiredListener {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemberExpiredListener{service: service, logger: logger}
}

// EventTypes returns the event types this listener handles
func (l *MemberExpiredListener) EventTypes() []string {
	return []string{membership.EventTypeMemberExpired}
}

// Handle creates the notification for the lapsed member
func (l *MemberExpiredListener) Handle(ctx context.Context, event shared.DomainEvent) error {
	expired, ok := event.(*membership.MemberExpiredEvent)
	if !ok {
		return nil
	}

	message := "Your membership has expired. Renew to keep your gym access."
	if _, err := l.service.Notify(ctx, expired.AggregateID(), notification.TypeMembershipExpired, "Membership expired", message); err != nil {
		l.logger.Warn("Failed to create expiry notification",
			zap.String("member_id", expired.AggregateID().String()),
			zap.Error(err))
		return err
	}
	return nil
}
