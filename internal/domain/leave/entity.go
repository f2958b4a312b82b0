package leave

import (
	"time"

	"github.com/shopspring/decimal"
)

// LeaveType entity. Global catalog entry; DefaultQuota is the day count
// granted to newly onboarded employees.
type LeaveType struct {
	ID           string
	Name         string
	Description  *string
	DefaultQuota decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// LeaveQuota is the ledger row, keyed by (employee, leave type, year).
// Day counts are decimals because half-day bookings exist.
type LeaveQuota struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	Year        int
	TotalDays   decimal.Decimal
	UsedDays    decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	LeaveTypeName        *string
	LeaveTypeDescription *string
}

// RemainingDays is derived at read time, never stored. Recomputing is
// idempotent; it can go negative when a quota is over-committed.
func (q LeaveQuota) RemainingDays() decimal.Decimal {
	return q.TotalDays.Sub(q.UsedDays)
}

// LeaveRecord entity - a single dated leave booking. DaysCount is trusted
// as entered, it is not required to equal the calendar span.
type LeaveRecord struct {
	ID          string
	EmployeeID  string
	LeaveTypeID string
	StartDate   time.Time
	EndDate     time.Time
	DaysCount   decimal.Decimal
	Reason      *string
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Relationships (for responses)
	EmployeeName  *string
	EmployeeEmail *string
	LeaveTypeName *string
}

// QuotaYear is the ledger year a record's delta lands on. It derives from
// the start date so attribution stays stable across year boundaries.
func (r LeaveRecord) QuotaYear() int {
	return r.StartDate.Year()
}

// QuotaKey identifies one ledger row.
type QuotaKey struct {
	EmployeeID  string
	LeaveTypeID string
	Year        int
}

// Key returns the ledger row this record is attributed to.
func (r LeaveRecord) Key() QuotaKey {
	return QuotaKey{
		EmployeeID:  r.EmployeeID,
		LeaveTypeID: r.LeaveTypeID,
		Year:        r.QuotaYear(),
	}
}
