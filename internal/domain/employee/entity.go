package employee

import "time"

type Employee struct {
	ID         string
	FullName   string
	Nickname   *string
	Email      *string
	Department *string
	HireDate   time.Time
	Birthday   *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

// Tenure is the elapsed work duration since the hire date, split into
// whole years and remaining months.
type Tenure struct {
	Years  int
	Months int
}

// TenureAt computes the work duration from the hire date up to now.
// Days within a partial month are dropped; a hire date in the future
// reads as zero.
func (e Employee) TenureAt(now time.Time) Tenure {
	if now.Before(e.HireDate) {
		return Tenure{}
	}

	years := now.Year() - e.HireDate.Year()
	months := int(now.Month()) - int(e.HireDate.Month())
	if now.Day() < e.HireDate.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	return Tenure{Years: years, Months: months}
}
