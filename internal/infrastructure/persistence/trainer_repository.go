package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/shared"
	"github.com/gymdesk/backend/internal/domain/training"
	"github.com/gymdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTrainerRepository implements TrainerRepository using GORM
type GormTrainerRepository struct {
	db *gorm.DB
}

// NewGormTrainerRepository creates a new GormTrainerRepository
func NewGormTrainerRepository(db *gorm.DB) *GormTrainerRepository {
	return &GormTrainerRepository{db: db}
}

// FindByID finds a trainer by its ID
func (r *GormTrainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.Trainer, error) {
	var model models.TrainerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all trainers matching the filter
func (r *GormTrainerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]training.Trainer, error) {
	var trainerModels []models.TrainerModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TrainerModel{}), filter)

	if err := query.Find(&trainerModels).Error; err != nil {
		return nil, err
	}

	trainers := make([]training.Trainer, len(trainerModels))
	for i, model := range trainerModels {
		trainers[i] = *model.ToDomain()
	}
	return trainers, nil
}

// FindActive finds trainers on the active roster
func (r *GormTrainerRepository) FindActive(ctx context.Context) ([]training.Trainer, error) {
	var trainerModels []models.TrainerModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&trainerModels).Error; err != nil {
		return nil, err
	}

	trainers := make([]training.Trainer, len(trainerModels))
	for i, model := range trainerModels {
		trainers[i] = *model.ToDomain()
	}
	return trainers, nil
}

// Save creates or updates a trainer
func (r *GormTrainerRepository) Save(ctx context.Context, trainer *training.Trainer) error {
	model := models.TrainerModelFromDomain(trainer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a trainer
func (r *GormTrainerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TrainerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts trainers matching the filter
func (r *GormTrainerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.TrainerModel{})
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR specialization ILIKE ?", searchPattern, searchPattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormTrainerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR specialization ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("name ASC")
	}

	return query
}

// Ensure GormTrainerRepository implements TrainerRepository
var _ training.TrainerRepository = (*GormTrainerRepository)(nil)
