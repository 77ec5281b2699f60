package membership

import (
	"context"
	"time"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// MemberRepository defines the persistence interface for members
type MemberRepository interface {
	shared.Repository[Member]

	// FindByEmail finds a member by email address
	FindByEmail(ctx context.Context, email string) (*Member, error)

	// FindByStatus returns members in the given status
	FindByStatus(ctx context.Context, status MemberStatus, filter shared.Filter) ([]Member, error)

	// FindExpiring returns active members whose end date falls on or
	// before the given date
	FindExpiring(ctx context.Context, before time.Time) ([]Member, error)
}
