package membership

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Plan-specific errors
var (
	ErrPlanNotFound        = shared.NewDomainError("PLAN_NOT_FOUND", "Membership plan not found")
	ErrPlanCodeRequired    = shared.NewDomainError("PLAN_CODE_REQUIRED", "Plan code is required")
	ErrPlanNameRequired    = shared.NewDomainError("PLAN_NAME_REQUIRED", "Plan name is required")
	ErrPlanDurationInvalid = shared.NewDomainError("PLAN_DURATION_INVALID", "Plan duration must be positive")
	ErrPlanPriceNegative   = shared.NewDomainError("PLAN_PRICE_NEGATIVE", "Plan price cannot be negative")
	ErrPlanInactive        = shared.NewDomainError("PLAN_INACTIVE", "Plan is not active")
)

// Walk-in plans grant a single day of access instead of a month-based
// term. The code is the stable identifier; the name is display-only and
// may be edited freely.
const (
	WalkInPlanCode = "WALKIN"
	WalkInPlanName = "Walk-in"
)

// Plan is a membership plan aggregate. A plan defines the term length
// and price of a membership. Walk-in plans grant one day of access.
type Plan struct {
	shared.BaseAggregateRoot
	Code           string
	Name           string
	Description    string
	DurationMonths int
	Price          decimal.Decimal
	Active         bool
}

// NewPlan creates a new membership plan
func NewPlan(code, name string, durationMonths int, price decimal.Decimal) (*Plan, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, ErrPlanCodeRequired
	}
	if name == "" {
		return nil, ErrPlanNameRequired
	}
	if durationMonths <= 0 && code != WalkInPlanCode {
		return nil, ErrPlanDurationInvalid
	}
	if price.IsNegative() {
		return nil, ErrPlanPriceNegative
	}

	plan := &Plan{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Name:              name,
		DurationMonths:    durationMonths,
		Price:             price,
		Active:            true,
	}

	plan.AddDomainEvent(NewPlanCreatedEvent(plan))
	return plan, nil
}

// IsWalkIn reports whether this plan grants day-pass access. The check
// is keyed on the plan code so renaming the plan cannot change its term
// semantics.
func (p *Plan) IsWalkIn() bool {
	return p.Code == WalkInPlanCode
}

// UpdateDetails updates the plan name, description and price
func (p *Plan) UpdateDetails(name, description string, price decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrPlanNameRequired
	}
	if price.IsNegative() {
		return ErrPlanPriceNegative
	}
	p.Name = name
	p.Description = description
	p.Price = price
	p.IncrementVersion()
	p.AddDomainEvent(NewPlanUpdatedEvent(p))
	return nil
}

// Deactivate retires the plan so it can no longer be sold
func (p *Plan) Deactivate() {
	if !p.Active {
		return
	}
	p.Active = false
	p.IncrementVersion()
	p.AddDomainEvent(NewPlanDeactivatedEvent(p))
}

// Activate makes the plan available for sale again
func (p *Plan) Activate() {
	if p.Active {
		return
	}
	p.Active = true
	p.IncrementVersion()
	p.AddDomainEvent(NewPlanUpdatedEvent(p))
}
