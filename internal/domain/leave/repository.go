package leave

import (
	"context"

	"github.com/shopspring/decimal"
)

// LeaveTypeRepository - interface for the leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Update(ctx context.Context, leaveType LeaveType) (LeaveType, error)
	Delete(ctx context.Context, id string) error
}

// LeaveQuotaRepository - interface for the employee_leave_quotas table
type LeaveQuotaRepository interface {
	// Create inserts unconditionally. Calling it twice for the same
	// (employee, leave type, year) produces duplicate rows.
	Create(ctx context.Context, quota LeaveQuota) (LeaveQuota, error)

	// CreateIfAbsent inserts only when no row exists for the quota's
	// (employee, leave type, year) key. Returns whether a row was inserted.
	CreateIfAbsent(ctx context.Context, quota LeaveQuota) (bool, error)

	GetByID(ctx context.Context, id string) (LeaveQuota, error)
	GetByKey(ctx context.Context, key QuotaKey) (LeaveQuota, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]LeaveQuota, error)
	GetByEmployeeYear(ctx context.Context, employeeID string, year int) ([]LeaveQuota, error)

	// SetUsedDays writes used_days as an absolute value.
	SetUsedDays(ctx context.Context, quotaID string, used decimal.Decimal) error

	// SetDays writes total_days and used_days as absolute values
	// (administrative override, bypasses delta logic).
	SetDays(ctx context.Context, quotaID string, total, used decimal.Decimal) error
}

// LeaveRecordRepository - interface for the leave_records table
type LeaveRecordRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	GetByID(ctx context.Context, id string) (LeaveRecord, error)
	List(ctx context.Context, filter RecordFilter) ([]LeaveRecord, int64, error)
	Update(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	Delete(ctx context.Context, id string) error
}
