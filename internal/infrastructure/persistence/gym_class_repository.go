package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/shared"
	"github.com/gymdesk/backend/internal/domain/training"
	"github.com/gymdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormGymClassRepository implements GymClassRepository using GORM
type GormGymClassRepository struct {
	db *gorm.DB
}

// NewGormGymClassRepository creates a new GormGymClassRepository
func NewGormGymClassRepository(db *gorm.DB) *GormGymClassRepository {
	return &GormGymClassRepository{db: db}
}

// FindByID finds a class by its ID
func (r *GormGymClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*training.GymClass, error) {
	var model models.GymClassModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all classes matching the filter
func (r *GormGymClassRepository) FindAll(ctx context.Context, filter shared.Filter) ([]training.GymClass, error) {
	var classModels []models.GymClassModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.GymClassModel{}), filter)

	if err := query.Find(&classModels).Error; err != nil {
		return nil, err
	}

	classes := make([]training.GymClass, len(classModels))
	for i, model := range classModels {
		classes[i] = *model.ToDomain()
	}
	return classes, nil
}

// FindByTrainer finds classes led by a trainer
func (r *GormGymClassRepository) FindByTrainer(ctx context.Context, trainerID uuid.UUID) ([]training.GymClass, error) {
	var classModels []models.GymClassModel
	if err := r.db.WithContext(ctx).
		Where("trainer_id = ?", trainerID).
		Order("start_time ASC").
		Find(&classModels).Error; err != nil {
		return nil, err
	}

	classes := make([]training.GymClass, len(classModels))
	for i, model := range classModels {
		classes[i] = *model.ToDomain()
	}
	return classes, nil
}

// FindUpcoming finds classes starting after the given time
func (r *GormGymClassRepository) FindUpcoming(ctx context.Context, after time.Time, filter shared.Filter) ([]training.GymClass, error) {
	var classModels []models.GymClassModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.GymClassModel{}).
			Where("start_time > ?", after),
		filter,
	)

	if err := query.Find(&classModels).Error; err != nil {
		return nil, err
	}

	classes := make([]training.GymClass, len(classModels))
	for i, model := range classModels {
		classes[i] = *model.ToDomain()
	}
	return classes, nil
}

// Save creates or updates a class
func (r *GormGymClassRepository) Save(ctx context.Context, class *training.GymClass) error {
	model := models.GymClassModelFromDomain(class)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a class
func (r *GormGymClassRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GymClassModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts classes matching the filter
func (r *GormGymClassRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.GymClassModel{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormGymClassRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "trainer_id":
			query = query.Where("trainer_id = ?", value)
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
		query = query.Order("start_time ASC")
	}

	return query
}

// Ensure GormGymClassRepository implements GymClassRepository
var _ training.GymClassRepository = (*GormGymClassRepository)(nil)
