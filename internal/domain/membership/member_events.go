package membership

import (
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Member event types
const (
	EventTypeMemberRegistered = "member.registered"
	EventTypeMemberSubscribed = "member.subscribed"
	EventTypeMemberExpired    = "member.expired"
	EventTypeMemberUpdated    = "member.updated"
)

// MemberRegisteredEvent is raised when a new member is registered
type MemberRegisteredEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewMemberRegisteredEvent creates a new member registered event
func NewMemberRegisteredEvent(member *Member) *MemberRegisteredEvent {
	return &MemberRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberRegistered, "Member", member.ID),
		Name:            member.Name,
		Email:           member.Email,
	}
}

// MemberSubscribedEvent is raised when a member is activated on a plan,
// both at signup and on renewal
type MemberSubscribedEvent struct {
	shared.BaseDomainEvent
	PlanID    uuid.UUID `json:"plan_id"`
	PlanName  string    `json:"plan_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// NewMemberSubscribedEvent creates a new member subscribed event
func NewMemberSubscribedEvent(member *Member, plan *Plan) *MemberSubscribedEvent {
	return &MemberSubscribedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberSubscribed, "Member", member.ID),
		PlanID:          plan.ID,
		PlanName:        plan.Name,
		StartDate:       *member.StartDate,
		EndDate:         *member.EndDate,
	}
}

// MemberExpiredEvent is raised when a membership lapses
type MemberExpiredEvent struct {
	shared.BaseDomainEvent
	Name    string     `json:"name"`
	Email   string     `json:"email"`
	EndDate *time.Time `json:"end_date,omitempty"`
}

// NewMemberExpiredEvent creates a new member expired event
func NewMemberExpiredEvent(member *Member) *MemberExpiredEvent {
	return &MemberExpiredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberExpired, "Member", member.ID),
		Name:            member.Name,
		Email:           member.Email,
		EndDate:         member.EndDate,
	}
}

// MemberUpdatedEvent is raised when member contact details change
type MemberUpdatedEvent struct {
	shared.BaseDomainEvent
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewMemberUpdatedEvent creates a new member updated event
func NewMemberUpdatedEvent(member *Member) *MemberUpdatedEvent {
	return &MemberUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeMemberUpdated, "Member", member.ID),
		Name:            member.Name,
		Email:           member.Email,
	}
}
