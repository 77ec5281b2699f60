package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/access"
)

// AccessLogModel is the persistence model for the AccessLog domain entity.
type AccessLogModel struct {
	BaseModel
	MemberID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Result    access.Result `gorm:"type:varchar(20);not null"`
	Reason    string        `gorm:"type:varchar(200)"`
	CheckedAt time.Time     `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (AccessLogModel) TableName() string {
	return "access_logs"
}

// ToDomain converts the persistence model to a domain AccessLog entity.
func (m *AccessLogModel) ToDomain() *access.AccessLog {
	return &access.AccessLog{
		BaseEntity: m.BaseModel.ToDomain(),
		MemberID:   m.MemberID,
		Result:     m.Result,
		Reason:     m.Reason,
		CheckedAt:  m.CheckedAt,
	}
}

// FromDomain populates the persistence model from a domain AccessLog entity.
func (m *AccessLogModel) FromDomain(l *access.AccessLog) {
	m.FromDomainBaseEntity(l.BaseEntity)
	m.MemberID = l.MemberID
	m.Result = l.Result
	m.Reason = l.Reason
	m.CheckedAt = l.CheckedAt
}

// AccessLogModelFromDomain creates a new persistence model from a domain AccessLog entity.
func AccessLogModelFromDomain(l *access.AccessLog) *AccessLogModel {
	m := &AccessLogModel{}
	m.FromDomain(l)
	return m
}
