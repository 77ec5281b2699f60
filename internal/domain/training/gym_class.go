package training

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Class-specific errors
var (
	ErrClassNotFound        = shared.NewDomainError("CLASS_NOT_FOUND", "Class not found")
	ErrClassNameRequired    = shared.NewDomainError("CLASS_NAME_REQUIRED", "Class name is required")
	ErrClassCapacityInvalid = shared.NewDomainError("CLASS_CAPACITY_INVALID", "Class capacity must be positive")
	ErrClassTimeInvalid     = shared.NewDomainError("CLASS_TIME_INVALID", "Class end time must be after start time")
	ErrClassFull            = shared.NewDomainError("CLASS_FULL", "Class is at capacity")
)

// GymClass is a scheduled class led by a trainer
type GymClass struct {
	shared.BaseAggregateRoot
	Name      string
	TrainerID uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Capacity  int
	Enrolled  int
}

// NewGymClass creates a new scheduled class
func NewGymClass(name string, trainerID uuid.UUID, startTime, endTime time.Time, capacity int) (*GymClass, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrClassNameRequired
	}
	if capacity <= 0 {
		return nil, ErrClassCapacityInvalid
	}
	if !endTime.After(startTime) {
		return nil, ErrClassTimeInvalid
	}

	class := &GymClass{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		TrainerID:         trainerID,
		StartTime:         startTime,
		EndTime:           endTime,
		Capacity:          capacity,
	}
	return class, nil
}

// Enroll adds one attendee to the class
func (c *GymClass) Enroll() error {
	if c.Enrolled >= c.Capacity {
		return ErrClassFull
	}
	c.Enrolled++
	c.IncrementVersion()
	return nil
}

// Withdraw removes one attendee from the class
func (c *GymClass) Withdraw() {
	if c.Enrolled == 0 {
		return
	}
	c.Enrolled--
	c.IncrementVersion()
}

// Reschedule moves the class to a new time slot
func (c *GymClass) Reschedule(startTime, endTime time.Time) error {
	if !endTime.After(startTime) {
		return ErrClassTimeInvalid
	}
	c.StartTime = startTime
	c.EndTime = endTime
	c.IncrementVersion()
	return nil
}
