package access

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// AccessLogRepository defines the persistence interface for access logs
type AccessLogRepository interface {
	// Save persists a check-in record
	Save(ctx context.Context, log *AccessLog) error

	// FindByMember returns check-in records for a member
	FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]AccessLog, error)

	// FindBetween returns check-in records in a time window
	FindBetween(ctx context.Context, from, to time.Time, filter shared.Filter) ([]AccessLog, error)
}
