package membership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// MemberService handles member lifecycle operations
type MemberService struct {
	memberRepo     membership.MemberRepository
	planRepo       membership.PlanRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewMemberService creates a new MemberService
func NewMemberService(
	memberRepo membership.MemberRepository,
	planRepo membership.PlanRepository,
	eventPublisher shared.EventPublisher,
	logger *zap.Logger,
) *MemberService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MemberService{
		memberRepo:     memberRepo,
		planRepo:       planRepo,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

// Register registers a new member without a subscription
func (s *MemberService) Register(ctx context.Context, req RegisterMemberRequest) (*MemberResponse, error) {
	existing, err := s.memberRepo.FindByEmail(ctx, req.Email)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, membership.ErrMemberEmailExists
	}

	member, err := membership.NewMember(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, member)
	return NewMemberResponse(member), nil
}

// Get returns a member by id
func (s *MemberService) Get(ctx context.Context, id uuid.UUID) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewMemberResponse(member), nil
}

// List returns members matching the filter
func (s *MemberService) List(ctx context.Context, filter shared.Filter) ([]MemberResponse, int64, error) {
	members, err := s.memberRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.memberRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]MemberResponse, len(members))
	for i := range members {
		responses[i] = *NewMemberResponse(&members[i])
	}
	return responses, total, nil
}

// Update updates a member's contact details
func (s *MemberService) Update(ctx context.Context, id uuid.UUID, req UpdateMemberRequest) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := member.UpdateContact(req.Name, req.Email, req.Phone); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, member)
	return NewMemberResponse(member), nil
}

// Subscribe puts a member on a plan. The end date is derived from the
// plan's term; walk-in plans grant a single day.
func (s *MemberService) Subscribe(ctx context.Context, memberID uuid.UUID, req SubscribeMemberRequest) (*MemberResponse, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, membership.ErrPlanNotFound
		}
		return nil, err
	}

	startDate := time.Now().Truncate(24 * time.Hour)
	if req.StartDate != nil {
		startDate = req.StartDate.Truncate(24 * time.Hour)
	}

	endDate, err := membership.MembershipEndDate(startDate, plan)
	if err != nil {
		return nil, err
	}

	if err := member.Subscribe(plan, startDate, endDate); err != nil {
		return nil, err
	}

	if err := s.memberRepo.Save(ctx, member); err != nil {
		return nil, err
	}

	s.logger.Info("Member subscribed",
		zap.String("member_id", member.ID.String()),
		zap.String("plan_code", plan.Code),
		zap.Time("end_date", endDate))

	s.publishEvents(ctx, member)
	return NewMemberResponse(member), nil
}

// Delete removes a member. Explicit admin action only.
func (s *MemberService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.memberRepo.Delete(ctx, id)
}

func (s *MemberService) publishEvents(ctx context.Context, member *membership.Member) {
	if s.eventPublisher == nil {
		return
	}
	if events := member.GetDomainEvents(); len(events) > 0 {
		if err := s.eventPublisher.Publish(ctx, events...); err != nil {
			s.logger.Warn("Failed to publish member events", zap.Error(err))
		}
		member.ClearDomainEvents()
	}
}
