package holiday

import (
	"context"
	"time"
)

// HolidayRepository - interface for the company_holidays table
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	// List returns all holidays ordered by date ascending.
	List(ctx context.Context) ([]Holiday, error)
	// Upcoming returns up to limit holidays on or after from, nearest first.
	Upcoming(ctx context.Context, from time.Time, limit int) ([]Holiday, error)
	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id string) error
}
