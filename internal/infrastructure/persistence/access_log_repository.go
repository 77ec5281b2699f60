package persistence

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gymdesk/backend/internal/domain/access"
	"github.com/gymdesk/backend/internal/domain/shared"
	"github.com/gymdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAccessLogRepository implements AccessLogRepository using GORM
type GormAccessLogRepository struct {
	db *gorm.DB
}

// NewGormAccessLogRepository creates a new GormAccessLogRepository
func NewGormAccessLogRepository(db *gorm.DB) *GormAccessLogRepository {
	return &GormAccessLogRepository{db: db}
}

// Save persists a check-in record
func (r *GormAccessLogRepository) Save(ctx context.Context, log *access.AccessLog) error {
	model := models.AccessLogModelFromDomain(log)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByMember finds check-in records for a member
func (r *GormAccessLogRepository) FindByMember(ctx context.Context, memberID uuid.UUID, filter shared.Filter) ([]access.AccessLog, error) {
	var logModels []models.AccessLogModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AccessLogModel{}).
			Where("member_id = ?", memberID),
		filter,
	)

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]access.AccessLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// FindBetween finds check-in records in a time window
func (r *GormAccessLogRepository) FindBetween(ctx context.Context, from, to time.Time, filter shared.Filter) ([]access.AccessLog, error) {
	var logModels []models.AccessLogModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.AccessLogModel{}).
			Where("checked_at >= ? AND checked_at < ?", from, to),
		filter,
	)

	if err := query.Find(&logModels).Error; err != nil {
		return nil, err
	}

	logs := make([]access.AccessLog, len(logModels))
	for i, model := range logModels {
		logs[i] = *model.ToDomain()
	}
	return logs, nil
}

// applyFilter applies filter options to the query
func (r *GormAccessLogRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "result":
			query = query.Where("result = ?", value)
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
		query = query.Order("checked_at DESC")
	}

	return query
}

// Ensure GormAccessLogRepository implements AccessLogRepository
var _ access.AccessLogRepository = (*GormAccessLogRepository)(nil)
