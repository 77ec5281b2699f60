package membership

import (
	"context"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// PlanRepository defines the persistence interface for membership plans
type PlanRepository interface {
	shared.Repository[Plan]

	// FindByCode finds a plan by its unique code
	FindByCode(ctx context.Context, code string) (*Plan, error)

	// FindByName finds a plan by its display name
	FindByName(ctx context.Context, name string) (*Plan, error)

	// FindActive returns all plans currently available for sale
	FindActive(ctx context.Context) ([]Plan, error)
}
