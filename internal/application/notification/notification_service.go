package notification

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/notification"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// NotificationService handles member notifications
type NotificationService struct {
	notifRepo notification.NotificationRepository
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notifRepo notification.NotificationRepository) *NotificationService {
	return &NotificationService{notifRepo: notifRepo}
}

// NotificationResponse is the API representation of a notification
type NotificationResponse struct {
	ID        uuid.UUID                     `json:"id"`
	MemberID  uuid.UUID                     `json:"member_id"`
	Type      notification.NotificationType `json:"type"`
	Title     string                        `json:"title,omitempty"`
	Message   string                        `json:"message"`
	Read      bool                          `json:"read"`
	ReadAt    *time.Time                    `json:"read_at,omitempty"`
	CreatedAt time.Time                     `json:"created_at"`
}

// NewNotificationResponse converts a notification to its API representation
func NewNotificationResponse(n *notification.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		MemberID:  n.MemberID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.Read,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// Notify creates a notification for a member
func (s *NotificationService) Notify(ctx context.Context, memberID uuid.UUID, notifType notification.NotificationType, title, message string) (*NotificationResponse, error) {
	n, err := notification.NewNotification(memberID, notifType, title, message)
	if err != nil {
		return nil, err
	}
	if err := s.notifRepo.Save(ctx, n); err != nil {
		return nil, err
	}
	return NewNotificationResponse(n), nil
}

// ListForMember returns notifications addressed to a member
func (s *NotificationService) ListForMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]NotificationResponse, error) {
	notifications, err := s.notifRepo.FindByMember(ctx, memberID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *NewNotificationResponse(&notifications[i])
	}
	return responses, nil
}

// CountUnread returns the unread notification count for a member
func (s *NotificationService) CountUnread(ctx context.Context, memberID uuid.UUID) (int64, error) {
	return s.notifRepo.CountUnread(ctx, memberID)
}

// MarkRead marks a notification as read
func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	n, err := s.notifRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	n.MarkRead()
	return s.notifRepo.Save(ctx, n)
}
