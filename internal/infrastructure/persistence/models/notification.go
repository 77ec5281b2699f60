package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/notification"
)

// NotificationModel is the persistence model for the Notification domain entity.
type NotificationModel struct {
	AggregateModel
	MemberID uuid.UUID                     `gorm:"type:uuid;not null;index"`
	Type     notification.NotificationType `gorm:"type:varchar(50);not null"`
	Title    string                        `gorm:"type:varchar(200)"`
	Message  string                        `gorm:"type:text;not null"`
	Read     bool                          `gorm:"not null;default:false;index"`
	ReadAt   *time.Time
}

// TableName returns the table name for GORM
func (NotificationModel) TableName() string {
	return "notifications"
}

// ToDomain converts the persistence model to a domain Notification entity.
func (m *NotificationModel) ToDomain() *notification.Notification {
	n := &notification.Notification{
		MemberID: m.MemberID,
		Type:     m.Type,
		Title:    m.Title,
		Message:  m.Message,
		Read:     m.Read,
		ReadAt:   m.ReadAt,
	}
	m.PopulateAggregateRoot(&n.BaseAggregateRoot)
	return n
}

// FromDomain populates the persistence model from a domain Notification entity.
func (m *NotificationModel) FromDomain(n *notification.Notification) {
	m.FromDomainAggregateRoot(n.BaseAggregateRoot)
	m.MemberID = n.MemberID
	m.Type = n.Type
	m.Title = n.Title
	m.Message = n.Message
	m.Read = n.Read
	m.ReadAt = n.ReadAt
}

// NotificationModelFromDomain creates a new persistence model from a domain Notification entity.
func NotificationModelFromDomain(n *notification.Notification) *NotificationModel {
	m := &NotificationModel{}
	m.FromDomain(n)
	return m
}
