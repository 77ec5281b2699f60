package membership

import (
	"context"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/gymdesk/backend/internal/domain/shared"
)

// PlanService handles membership plan operations
type PlanService struct {
	planRepo       membership.PlanRepository
	eventPublisher shared.EventPublisher
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo membership.PlanRepository, eventPublisher shared.EventPublisher) *PlanService {
	return &PlanService{
		planRepo:       planRepo,
		eventPublisher: eventPublisher,
	}
}

// Create creates a new membership plan
func (s *PlanService) Create(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error) {
	existing, err := s.planRepo.FindByCode(ctx, req.Code)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("PLAN_CODE_EXISTS", "A plan with this code already exists")
	}

	plan, err := membership.NewPlan(req.Code, req.Name, req.DurationMonths, req.Price)
	if err != nil {
		return nil, err
	}
	if req.Description != "" {
		plan.Description = req.Description
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, plan)
	return NewPlanResponse(plan), nil
}

// Get returns a plan by id
func (s *PlanService) Get(ctx context.Context, id uuid.UUID) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewPlanResponse(plan), nil
}

// List returns all plans matching the filter
func (s *PlanService) List(ctx context.Context, filter shared.Filter) ([]PlanResponse, int64, error) {
	plans, err := s.planRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.planRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = *NewPlanResponse(&plans[i])
	}
	return responses, total, nil
}

// Update updates a plan's details
func (s *PlanService) Update(ctx context.Context, id uuid.UUID, req UpdatePlanRequest) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := plan.UpdateDetails(req.Name, req.Description, req.Price); err != nil {
		return nil, err
	}

	if err := s.planRepo.Save(ctx, plan); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, plan)
	return NewPlanResponse(plan), nil
}

// Deactivate retires a plan
func (s *PlanService) Deactivate(ctx context.Context, id uuid.UUID) error {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	plan.Deactivate()
	if err := s.planRepo.Save(ctx, plan); err != nil {
		return err
	}

	s.publishEvents(ctx, plan)
	return nil
}

func (s *PlanService) publishEvents(ctx context.Context, plan *membership.Plan) {
	if s.eventPublisher == nil {
		return
	}
	if events := plan.GetDomainEvents(); len(events) > 0 {
		_ = s.eventPublisher.Publish(ctx, events...)
		plan.ClearDomainEvents()
	}
}
