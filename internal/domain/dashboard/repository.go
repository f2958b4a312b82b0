package dashboard

import (
	"context"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// DashboardRepository defines the interface for dashboard aggregates
type DashboardRepository interface {
	// Counts returns the headline totals in one round trip.
	Counts(ctx context.Context) (Counts, error)

	// RecentLeaves returns the newest leave records with names resolved.
	RecentLeaves(ctx context.Context, limit int) ([]leave.LeaveRecord, error)
}
