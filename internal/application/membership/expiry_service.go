package membership

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// ExpiryService sweeps active members whose end date has passed and
// marks them expired. It runs from the scheduler.
type ExpiryService struct {
	memberRepo     membership.MemberRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewExpiryService creates a new ExpiryService
func NewExpiryService(
	memberRepo membership.MemberRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *ExpiryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpiryService{
		memberRepo:     memberRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// ExpireLapsedMembers marks every active member whose end date is
// before the given moment as expired. Returns the number of members
// expired.
func (s *ExpiryService) ExpireLapsedMembers(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Truncate(24*time.Hour).AddDate(0, 0, -1)
	members, err := s.memberRepo.FindExpiring(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	expired := 0
	for i := range members {
		member := &members[i]
		member.Expire()
		if err := s.memberRepo.Save(ctx, member); err != nil {
			s.logger.Error("Failed to expire member",
				zap.String("member_id", member.ID.String()),
				zap.Error(err))
			continue
		}
		expired++

		if s.eventPublisher != nil {
			if events := member.GetDomainEvents(); len(events) > 0 {
				if err := s.eventPublisher.Publish(ctx, events...); err != nil {
					s.logger.Warn("Failed to publish expiry events", zap.Error(err))
				}
				member.ClearDomainEvents()
			}
		}
	}

	if expired > 0 {
		s.logger.Info("Expired lapsed members", zap.Int("count", expired))
	}
	return expired, nil
}
