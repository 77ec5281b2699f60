package training

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// TrainerRepository defines the persistence interface for trainers
type TrainerRepository interface {
	shared.Repository[Trainer]

	// FindActive returns trainers on the active roster
	FindActive(ctx context.Context) ([]Trainer, error)
}

// GymClassRepository defines the persistence interface for classes
type GymClassRepository interface {
	shared.Repository[GymClass]

	// FindByTrainer returns classes led by a trainer
	FindByTrainer(ctx context.Context, trainerID uuid.UUID) ([]GymClass, error)

	// FindUpcoming returns classes starting after the given time
	FindUpcoming(ctx context.Context, after time.Time, filter shared.Filter) ([]GymClass, error)
}
