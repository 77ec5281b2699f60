package training

import (
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/training"
)

// CreateTrainerRequest is the input for adding a trainer
type CreateTrainerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
}

// UpdateTrainerRequest is the input for updating a trainer
type UpdateTrainerRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"omitempty,email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
}

// TrainerResponse is the API representation of a trainer
type TrainerResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewTrainerResponse converts a trainer aggregate to its API representation
func NewTrainerResponse(trainer *training.Trainer) *TrainerResponse {
	return &TrainerResponse{
		ID:             trainer.ID,
		Name:           trainer.Name,
		Email:          trainer.Email,
		Phone:          trainer.Phone,
		Specialization: trainer.Specialization,
		Active:         trainer.Active,
		CreatedAt:      trainer.CreatedAt,
	}
}

// CreateClassRequest is the input for scheduling a class
type CreateClassRequest struct {
	Name      string    `json:"name" binding:"required"`
	TrainerID uuid.UUID `json:"trainer_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Capacity  int       `json:"capacity" binding:"required,min=1"`
}

// RescheduleClassRequest is the input for moving a class
type RescheduleClassRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

// ClassResponse is the API representation of a class
type ClassResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	TrainerID uuid.UUID `json:"trainer_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Capacity  int       `json:"capacity"`
	Enrolled  int       `json:"enrolled"`
}

// NewClassResponse converts a class aggregate to its API representation
func NewClassResponse(class *training.GymClass) *ClassResponse {
	return &ClassResponse{
		ID:        class.ID,
		Name:      class.Name,
		TrainerID: class.TrainerID,
		StartTime: class.StartTime,
		EndTime:   class.EndTime,
		Capacity:  class.Capacity,
		Enrolled:  class.Enrolled,
	}
}
