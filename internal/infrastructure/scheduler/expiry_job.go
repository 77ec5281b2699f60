package scheduler

import (
	"context"
	"time"

	membershipapp "github.com/gymdesk/backend/internal/application/membership"
)

// ExpiryJob sweeps lapsed memberships
type ExpiryJob struct {
	expiryService *membershipapp.ExpiryService
}

// NewExpiryJob creates a new expiry sweep job
func NewExpiryJob(expiryService *membershipapp.ExpiryService) *ExpiryJob {
	return &ExpiryJob{expiryService: expiryService}
}

// Name identifies the job in logs
func (j *ExpiryJob) Name() string {
	return "membership-expiry-sweep"
}

// Run expires every active member whose term has lapsed
func (j *ExpiryJob) Run(ctx context.Context) error {
	_, err := j.expiryService.ExpireLapsedMembers(ctx, time.Now())
	return err
}
