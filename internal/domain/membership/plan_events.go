package membership

import (
	"github.com/shopspring/decimal"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Plan event types
const (
	EventTypePlanCreated     = "plan.created"
	EventTypePlanUpdated     = "plan.updated"
	EventTypePlanDeactivated = "plan.deactivated"
)

// PlanCreatedEvent is raised when a new plan is created
type PlanCreatedEvent struct {
	shared.BaseDomainEvent
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	DurationMonths int             `json:"duration_months"`
	Price          decimal.Decimal `json:"price"`
}

// NewPlanCreatedEvent creates a new plan created event
func NewPlanCreatedEvent(plan *Plan) *PlanCreatedEvent {
	return &PlanCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlanCreated, "Plan", plan.ID),
		Code:            plan.Code,
		Name:            plan.Name,
		DurationMonths:  plan.DurationMonths,
		Price:           plan.Price,
	}
}

// PlanUpdatedEvent is raised when plan details change
type PlanUpdatedEvent struct {
	shared.BaseDomainEvent
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// NewPlanUpdatedEvent creates a new plan updated event
func NewPlanUpdatedEvent(plan *Plan) *PlanUpdatedEvent {
	return &PlanUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlanUpdated, "Plan", plan.ID),
		Name:            plan.Name,
		Price:           plan.Price,
	}
}

// PlanDeactivatedEvent is raised when a plan is retired
type PlanDeactivatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
}

// NewPlanDeactivatedEvent creates a new plan deactivated event
func NewPlanDeactivatedEvent(plan *Plan) *PlanDeactivatedEvent {
	return &PlanDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePlanDeactivated, "Plan", plan.ID),
		Code:            plan.Code,
	}
}
