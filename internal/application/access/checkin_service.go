package access

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gymdesk/backend/internal/domain/access"
	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// CheckInService handles front-desk check-ins. Every attempt is logged
// whether access is granted or not.
type CheckInService struct {
	memberRepo membership.MemberRepository
	logRepo    access.AccessLogRepository
	logger     *zap.Logger
}

// NewCheckInService creates a new CheckInService
func NewCheckInService(memberRepo membership.MemberRepository, logRepo access.AccessLogRepository, logger *zap.Logger) *CheckInService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckInService{
		memberRepo: memberRepo,
		logRepo:    logRepo,
		logger:     logger,
	}
}

// CheckInResponse reports the outcome of a check-in attempt
type CheckInResponse struct {
	MemberID  uuid.UUID     `json:"member_id"`
	Result    access.Result `json:"result"`
	Reason    string        `json:"reason,omitempty"`
	CheckedAt time.Time     `json:"checked_at"`
}

// CheckIn verifies the member's subscription covers today and records
// the attempt
func (s *CheckInService) CheckIn(ctx context.Context, memberID uuid.UUID) (*CheckInResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, membership.ErrMemberNotFound
		}
		return nil, err
	}

	result := access.ResultGranted
	reason := ""
	if !member.IsActiveOn(time.Now()) {
		result = access.ResultDenied
		reason = shared.ErrMembershipInactive.Message
	}

	log := access.NewAccessLog(member.ID, result, reason)
	if err := s.logRepo.Save(ctx, log); err != nil {
		return nil, err
	}

	s.logger.Info("Check-in recorded",
		zap.String("member_id", member.ID.String()),
		zap.String("result", string(result)))

	return &CheckInResponse{
		MemberID:  member.ID,
		Result:    result,
		Reason:    reason,
		CheckedAt: log.CheckedAt,
	}, nil
}

// ListForMember returns the check-in history for a member
func (s *CheckInService) ListForMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]access.AccessLog, error) {
	return s.logRepo.FindByMember(ctx, memberID, filter)
}

// ListBetween returns check-ins inside a time window
func (s *CheckInService) ListBetween(ctx context.Context, from, to time.Time, filter shared.Filter) ([]access.AccessLog, error) {
	return s.logRepo.FindBetween(ctx, from, to, filter)
}
