package dashboard

import "context"

// DashboardService defines business logic for the dashboard landing page
type DashboardService interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}
