package access

import (
	"time"

	"github.com/google/uuid"

	"github.com/gymdesk/backend/internal/domain/shared"
)

// Result represents the outcome of a check-in attempt
type Result string

// Check-in results
const (
	ResultGranted Result = "granted"
	ResultDenied  Result = "denied"
)

// AccessLog records a single check-in attempt at the front desk
type AccessLog struct {
	shared.BaseEntity
	MemberID  uuid.UUID
	Result    Result
	Reason    string
	CheckedAt time.Time
}

// NewAccessLog records a check-in attempt
func NewAccessLog(memberID uuid.UUID, result Result, reason string) *AccessLog {
	return &AccessLog{
		BaseEntity: shared.NewBaseEntity(),
		MemberID:   memberID,
		Result:     result,
		Reason:     reason,
		CheckedAt:  time.Now(),
	}
}
