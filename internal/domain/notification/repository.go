package notification

import (
	"context"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// NotificationRepository defines the persistence interface for notifications
type NotificationRepository interface {
	shared.Repository[Notification]

	// FindByMember returns notifications addressed to a member
	FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]Notification, error)

	// CountUnread returns the number of unread notifications for a member
	CountUnread(ctx context.Context, memberID uuid.UUID) (int64, error)
}
