package membership

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// MemberStatus represents the lifecycle state of a membership
type MemberStatus string

// Member statuses
const (
	MemberStatusPending MemberStatus = "pending"
	MemberStatusActive  MemberStatus = "active"
	MemberStatusExpired MemberStatus = "expired"
)

// Member-specific errors
var (
	ErrMemberNotFound      = shared.NewDomainError("MEMBER_NOT_FOUND", "Member not found")
	ErrMemberNameRequired  = shared.NewDomainError("MEMBER_NAME_REQUIRED", "Member name is required")
	ErrMemberEmailRequired = shared.NewDomainError("MEMBER_EMAIL_REQUIRED", "Member email is required")
	ErrMemberEmailExists   = shared.NewDomainError("MEMBER_EMAIL_EXISTS", "A member with this email already exists")
)

// Member is the membership aggregate root. A member holds a reference to
// the plan they subscribed to and the date range their access covers.
type Member struct {
	shared.BaseAggregateRoot
	Name      string
	Email     string
	Phone     string
	Status    MemberStatus
	PlanID    *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// NewMember creates a new member without an active subscription
func NewMember(name, email, phone string) (*Member, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return nil, ErrMemberNameRequired
	}
	if email == "" {
		return nil, ErrMemberEmailRequired
	}

	member := &Member{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             email,
		Phone:             strings.TrimSpace(phone),
		Status:            MemberStatusPending,
	}

	member.AddDomainEvent(NewMemberRegisteredEvent(member))
	return member, nil
}

// Subscribe activates the member on a plan for the given date range.
// It is used both at signup and whenever a successful payment renews
// the membership; the new range replaces the previous one.
func (m *Member) Subscribe(plan *Plan, startDate, endDate time.Time) error {
	if !plan.Active {
		return ErrPlanInactive
	}
	planID := plan.ID
	m.PlanID = &planID
	m.StartDate = &startDate
	m.EndDate = &endDate
	m.Status = MemberStatusActive
	m.IncrementVersion()
	m.AddDomainEvent(NewMemberSubscribedEvent(m, plan))
	return nil
}

// Expire marks the membership as expired. It is a no-op unless the
// member is currently active.
func (m *Member) Expire() {
	if m.Status != MemberStatusActive {
		return
	}
	m.Status = MemberStatusExpired
	m.IncrementVersion()
	m.AddDomainEvent(NewMemberExpiredEvent(m))
}

// IsActiveOn reports whether the membership covers the given date
func (m *Member) IsActiveOn(date time.Time) bool {
	if m.Status != MemberStatusActive || m.StartDate == nil || m.EndDate == nil {
		return false
	}
	day := date.Truncate(24 * time.Hour)
	return !day.Before(m.StartDate.Truncate(24*time.Hour)) && !day.After(m.EndDate.Truncate(24*time.Hour))
}

// UpdateContact updates the member's contact details
func (m *Member) UpdateContact(name, email, phone string) error {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" {
		return ErrMemberNameRequired
	}
	if email == "" {
		return ErrMemberEmailRequired
	}
	m.Name = name
	m.Email = email
	m.Phone = strings.TrimSpace(phone)
	m.IncrementVersion()
	m.AddDomainEvent(NewMemberUpdatedEvent(m))
	return nil
}
