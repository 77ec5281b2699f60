package notification

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// NotificationType categorizes what triggered a notification
type NotificationType string

// Notification types
const (
	TypePaymentReceived   NotificationType = "payment_received"
	TypeMembershipExpired NotificationType = "membership_expired"
	TypeAnnouncement      NotificationType = "announcement"
)

// Notification-specific errors
var (
	ErrNotificationNotFound     = shared.NewDomainError("NOTIFICATION_NOT_FOUND", "Notification not found")
	ErrNotificationBodyRequired = shared.NewDomainError("NOTIFICATION_BODY_REQUIRED", "Notification message is required")
)

// Notification is a message addressed to a member, shown in the
// dashboard and optionally delivered out of band
type Notification struct {
	shared.BaseAggregateRoot
	MemberID uuid.UUID
	Type     NotificationType
	Title    string
	Message  string
	Read     bool
	ReadAt   *time.Time
}

// NewNotification creates an unread notification for a member
func NewNotification(memberID uuid.UUID, notifType NotificationType, title, message string) (*Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrNotificationBodyRequired
	}

	return &Notification{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		MemberID:          memberID,
		Type:              notifType,
		Title:             strings.TrimSpace(title),
		Message:           message,
	}, nil
}

// MarkRead marks the notification as read
func (n *Notification) MarkRead() {
	if n.Read {
		return
	}
	now := time.Now()
	n.Read = true
	n.ReadAt = &now
	n.IncrementVersion()
}
