package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/membership"
	"github.com/shopspring/decimal"
)

// PlanModel is the persistence model for the Plan domain entity.
type PlanModel struct {
	AggregateModel
	Code           string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name           string          `gorm:"type:varchar(200);not null;index"`
	Description    string          `gorm:"type:text"`
	DurationMonths int             `gorm:"not null;default:0"`
	Price          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Active         bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}

// ToDomain converts the persistence model to a domain Plan entity.
func (m *PlanModel) ToDomain() *membership.Plan {
	plan := &membership.Plan{
		Code:           m.Code,
		Name:           m.Name,
		Description:    m.Description,
		DurationMonths: m.DurationMonths,
		Price:          m.Price,
		Active:         m.Active,
	}
	m.PopulateAggregateRoot(&plan.BaseAggregateRoot)
	return plan
}

// FromDomain populates the persistence model from a domain Plan entity.
func (m *PlanModel) FromDomain(p *membership.Plan) {
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	m.Code = p.Code
	m.Name = p.Name
	m.Description = p.Description
	m.DurationMonths = p.DurationMonths
	m.Price = p.Price
	m.Active = p.Active
}

// PlanModelFromDomain creates a new persistence model from a domain Plan entity.
func PlanModelFromDomain(p *membership.Plan) *PlanModel {
	m := &PlanModel{}
	m.FromDomain(p)
	return m
}

// MemberModel is the persistence model for the Member domain entity.
type MemberModel struct {
	AggregateModel
	Name      string                  `gorm:"type:varchar(200);not null"`
	Email     string                  `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone     string                  `gorm:"type:varchar(50)"`
	Status    membership.MemberStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	PlanID    *uuid.UUID              `gorm:"type:uuid;index"`
	StartDate *time.Time              `gorm:"type:date"`
	EndDate   *time.Time              `gorm:"type:date;index"`
}

// TableName returns the table name for GORM
func (MemberModel) TableName() string {
	return "members"
}

// ToDomain converts the persistence model to a domain Member entity.
func (m *MemberModel) ToDomain() *membership.Member {
	member := &membership.Member{
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Status:    m.Status,
		PlanID:    m.PlanID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
	}
	m.PopulateAggregateRoot(&member.BaseAggregateRoot)
	return member
}

// FromDomain populates the persistence model from a domain Member entity.
func (m *MemberModel) FromDomain(mem *membership.Member) {
	m.FromDomainAggregateRoot(mem.BaseAggregateRoot)
	m.Name = mem.Name
	m.Email = mem.Email
	m.Phone = mem.Phone
	m.Status = mem.Status
	m.PlanID = mem.PlanID
	m.StartDate = mem.StartDate
	m.EndDate = mem.EndDate
}

// MemberModelFromDomain creates a new persistence model from a domain Member entity.
func MemberModelFromDomain(mem *membership.Member) *MemberModel {
	m := &MemberModel{}
	m.FromDomain(mem)
	return m
}
