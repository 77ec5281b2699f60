package training

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
	"github.com/gymdesk/backend/internal/domain/training"
)

// TrainingService handles trainers and class scheduling
type TrainingService struct {
	trainerRepo training.TrainerRepository
	classRepo   training.GymClassRepository
}

// NewTrainingService creates a new TrainingService
func NewTrainingService(trainerRepo training.TrainerRepository, classRepo training.GymClassRepository) *TrainingService {
	return &TrainingService{
		trainerRepo: trainerRepo,
		classRepo:   classRepo,
	}
}

// CreateTrainer adds a trainer to the roster
func (s *TrainingService) CreateTrainer(ctx context.Context, req CreateTrainerRequest) (*TrainerResponse, error) {
	trainer, err := training.NewTrainer(req.Name, req.Email, req.Phone, req.Specialization)
	if err != nil {
		return nil, err
	}
	if err := s.trainerRepo.Save(ctx, trainer); err != nil {
		return nil, err
	}
	return NewTrainerResponse(trainer), nil
}

// GetTrainer returns a trainer by id
func (s *TrainingService) GetTrainer(ctx context.Context, id uuid.UUID) (*TrainerResponse, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewTrainerResponse(trainer), nil
}

// ListTrainers returns trainers matching the filter
func (s *TrainingService) ListTrainers(ctx context.Context, filter shared.Filter) ([]TrainerResponse, int64, error) {
	trainers, err := s.trainerRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.trainerRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TrainerResponse, len(trainers))
	for i := range trainers {
		responses[i] = *NewTrainerResponse(&trainers[i])
	}
	return responses, total, nil
}

// UpdateTrainer updates a trainer's profile
func (s *TrainingService) UpdateTrainer(ctx context.Context, id uuid.UUID, req UpdateTrainerRequest) (*TrainerResponse, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := trainer.UpdateDetails(req.Name, req.Email, req.Phone, req.Specialization); err != nil {
		return nil, err
	}
	if err := s.trainerRepo.Save(ctx, trainer); err != nil {
		return nil, err
	}
	return NewTrainerResponse(trainer), nil
}

// DeactivateTrainer removes a trainer from the active roster
func (s *TrainingService) DeactivateTrainer(ctx context.Context, id uuid.UUID) error {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	trainer.Deactivate()
	return s.trainerRepo.Save(ctx, trainer)
}

// CreateClass schedules a class with an active trainer
func (s *TrainingService) CreateClass(ctx context.Context, req CreateClassRequest) (*ClassResponse, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, req.TrainerID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, training.ErrTrainerNotFound
		}
		return nil, err
	}
	if !trainer.Active {
		return nil, shared.ErrInvalidState
	}

	class, err := training.NewGymClass(req.Name, trainer.ID, req.StartTime, req.EndTime, req.Capacity)
	if err != nil {
		return nil, err
	}
	if err := s.classRepo.Save(ctx, class); err != nil {
		return nil, err
	}
	return NewClassResponse(class), nil
}

// GetClass returns a class by id
func (s *TrainingService) GetClass(ctx context.Context, id uuid.UUID) (*ClassResponse, error) {
	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewClassResponse(class), nil
}

// ListUpcomingClasses returns classes starting after now
func (s *TrainingService) ListUpcomingClasses(ctx context.Context, filter shared.Filter) ([]ClassResponse, error) {
	classes, err := s.classRepo.FindUpcoming(ctx, time.Now(), filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ClassResponse, len(classes))
	for i := range classes {
		responses[i] = *NewClassResponse(&classes[i])
	}
	return responses, nil
}

// RescheduleClass moves a class to a new time slot
func (s *TrainingService) RescheduleClass(ctx context.Context, id uuid.UUID, req RescheduleClassRequest) (*ClassResponse, error) {
	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := class.Reschedule(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}
	if err := s.classRepo.Save(ctx, class); err != nil {
		return nil, err
	}
	return NewClassResponse(class), nil
}

// EnrollInClass adds one attendee to a class
func (s *TrainingService) EnrollInClass(ctx context.Context, id uuid.UUID) (*ClassResponse, error) {
	class, err := s.classRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := class.Enroll(); err != nil {
		return nil, err
	}
	if err := s.classRepo.Save(ctx, class); err != nil {
		return nil, err
	}
	return NewClassResponse(class), nil
}

// DeleteClass removes a class from the schedule
func (s *TrainingService) DeleteClass(ctx context.Context, id uuid.UUID) error {
	return s.classRepo.Delete(ctx, id)
}
