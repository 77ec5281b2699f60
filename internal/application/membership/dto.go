package membership

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/gymdesk/backend/internal/domain/membership"
)

// CreatePlanRequest is the input for creating a membership plan
type CreatePlanRequest struct {
	Code           string          `json:"code" binding:"required"`
	Name           string          `json:"name" binding:"required"`
	Description    string          `json:"description"`
	DurationMonths int             `json:"duration_months"`
	Price          decimal.Decimal `json:"price" binding:"required"`
}

// UpdatePlanRequest is the input for updating a membership plan
type UpdatePlanRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
}

// PlanResponse is the API representation of a plan
type PlanResponse struct {
	ID             uuid.UUID       `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	DurationMonths int             `json:"duration_months"`
	Price          decimal.Decimal `json:"price"`
	WalkIn         bool            `json:"walk_in"`
	Active         bool            `json:"active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// NewPlanResponse converts a plan aggregate to its API representation
func NewPlanResponse(plan *membership.Plan) *PlanResponse {
	return &PlanResponse{
		ID:             plan.ID,
		Code:           plan.Code,
		Name:           plan.Name,
		Description:    plan.Description,
		DurationMonths: plan.DurationMonths,
		Price:          plan.Price,
		WalkIn:         plan.IsWalkIn(),
		Active:         plan.Active,
		CreatedAt:      plan.CreatedAt,
		UpdatedAt:      plan.UpdatedAt,
	}
}

// RegisterMemberRequest is the input for registering a member
type RegisterMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// UpdateMemberRequest is the input for updating member contact details
type UpdateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`
}

// SubscribeMemberRequest is the input for putting a member on a plan
type SubscribeMemberRequest struct {
	PlanID    uuid.UUID  `json:"plan_id" binding:"required"`
	StartDate *time.Time `json:"start_date"`
}

// MemberResponse is the API representation of a member
type MemberResponse struct {
	ID        uuid.UUID               `json:"id"`
	Name      string                  `json:"name"`
	Email     string                  `json:"email"`
	Phone     string                  `json:"phone,omitempty"`
	Status    membership.MemberStatus `json:"status"`
	PlanID    *uuid.UUID              `json:"plan_id,omitempty"`
	StartDate *time.Time              `json:"start_date,omitempty"`
	EndDate   *time.Time              `json:"end_date,omitempty"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`
}

// NewMemberResponse converts a member aggregate to its API representation
func NewMemberResponse(member *membership.Member) *MemberResponse {
	return &MemberResponse{
		ID:        member.ID,
		Name:      member.Name,
		Email:     member.Email,
		Phone:     member.Phone,
		Status:    member.Status,
		PlanID:    member.PlanID,
		StartDate: member.StartDate,
		EndDate:   member.EndDate,
		CreatedAt: member.CreatedAt,
		UpdatedAt: member.UpdatedAt,
	}
}
