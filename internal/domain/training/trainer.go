package training

import (
	"strings"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Trainer-specific errors
var (
	ErrTrainerNotFound     = shared.NewDomainError("TRAINER_NOT_FOUND", "Trainer not found")
	ErrTrainerNameRequired = shared.NewDomainError("TRAINER_NAME_REQUIRED", "Trainer name is required")
)

// Trainer is a gym trainer who can be assigned to classes
type Trainer struct {
	shared.BaseAggregateRoot
	Name           string
	Email          string
	Phone          string
	Specialization string
	Active         bool
}

// NewTrainer creates a new active trainer
func NewTrainer(name, email, phone, specialization string) (*Trainer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrTrainerNameRequired
	}

	trainer := &Trainer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Email:             strings.ToLower(strings.TrimSpace(email)),
		Phone:             strings.TrimSpace(phone),
		Specialization:    strings.TrimSpace(specialization),
		Active:            true,
	}
	return trainer, nil
}

// UpdateDetails updates the trainer's profile
func (t *Trainer) UpdateDetails(name, email, phone, specialization string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrTrainerNameRequired
	}
	t.Name = name
	t.Email = strings.ToLower(strings.TrimSpace(email))
	t.Phone = strings.TrimSpace(phone)
	t.Specialization = strings.TrimSpace(specialization)
	t.IncrementVersion()
	return nil
}

// Deactivate removes the trainer from the active roster
func (t *Trainer) Deactivate() {
	if !t.Active {
		return
	}
	t.Active = false
	t.IncrementVersion()
}
