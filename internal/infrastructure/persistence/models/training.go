package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/training"
)

// TrainerModel is the persistence model for the Trainer domain entity.
type TrainerModel struct {
	AggregateModel
	Name           string `gorm:"type:varchar(200);not null"`
	Email          string `gorm:"type:varchar(200);index"`
	Phone          string `gorm:"type:varchar(50)"`
	Specialization string `gorm:"type:varchar(200)"`
	Active         bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (TrainerModel) TableName() string {
	return "trainers"
}

// ToDomain converts the persistence model to a domain Trainer entity.
func (m *TrainerModel) ToDomain() *training.Trainer {
	trainer := &training.Trainer{
		Name:           m.Name,
		Email:          m.Email,
		Phone:          m.Phone,
		Specialization: m.Specialization,
		Active:         m.Active,
	}
	m.PopulateAggregateRoot(&trainer.BaseAggregateRoot)
	return trainer
}

// FromDomain populates the persistence model from a domain Trainer entity.
func (m *TrainerModel) FromDomain(t *training.Trainer) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.Name = t.Name
	m.Email = t.Email
	m.Phone = t.Phone
	m.Specialization = t.Specialization
	m.Active = t.Active
}

// TrainerModelFromDomain creates a new persistence model from a domain Trainer entity.
func TrainerModelFromDomain(t *training.Trainer) *TrainerModel {
	m := &TrainerModel{}
	m.FromDomain(t)
	return m
}

// GymClassModel is the persistence model for the GymClass domain entity.
type GymClassModel struct {
	AggregateModel
	Name      string    `gorm:"type:varchar(200);not null"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;index"`
	StartTime time.Time `gorm:"not null;index"`
	EndTime   time.Time `gorm:"not null"`
	Capacity  int       `gorm:"not null"`
	Enrolled  int       `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (GymClassModel) TableName() string {
	return "gym_classes"
}

// ToDomain converts the persistence model to a domain GymClass entity.
func (m *GymClassModel) ToDomain() *training.GymClass {
	class := &training.GymClass{
		Name:      m.Name,
		TrainerID: m.TrainerID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Capacity:  m.Capacity,
		Enrolled:  m.Enrolled,
	}
	m.PopulateAggregateRoot(&class.BaseAggregateRoot)
	return class
}

// FromDomain populates the persistence model from a domain GymClass entity.
func (m *GymClassModel) FromDomain(c *training.GymClass) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.TrainerID = c.TrainerID
	m.StartTime = c.StartTime
	m.EndTime = c.EndTime
	m.Capacity = c.Capacity
	m.Enrolled = c.Enrolled
}

// GymClassModelFromDomain creates a new persistence model from a domain GymClass entity.
func GymClassModelFromDomain(c *training.GymClass) *GymClassModel {
	m := &GymClassModel{}
	m.FromDomain(c)
	return m
}
