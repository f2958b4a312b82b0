package holiday

import "time"

// Holiday is a company-wide holiday. Recurring holidays repeat every year
// on the same calendar date.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Description *string
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
