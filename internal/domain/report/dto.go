package report

import (
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// EmployeeQuotas is the raw join row set for one employee: the employee's
// identity plus every ledger row attributed to them, with leave-type names
// resolved. A pure projection; derivation happens in the service.
type EmployeeQuotas struct {
	EmployeeID string
	FullName   string
	Nickname   *string
	Email      *string
	Quotas     []leave.LeaveQuota
}

// QuotaUsage is one summary line: the ledger row plus its read-time
// derivations.
type QuotaUsage struct {
	LeaveTypeName        string  `json:"leave_type_name"`
	LeaveTypeDescription *string `json:"leave_type_description,omitempty"`
	Year                 int     `json:"year"`
	TotalDays            float64 `json:"total_days"`
	UsedDays             float64 `json:"used_days"`
	RemainingDays        float64 `json:"remaining_days"`
	UsagePercent         float64 `json:"usage_percent"`
}

// EmployeeLeaveSummary groups an employee's quota usage lines.
type EmployeeLeaveSummary struct {
	EmployeeID string       `json:"employee_id"`
	FullName   string       `json:"full_name"`
	Nickname   *string      `json:"nickname,omitempty"`
	Email      *string      `json:"email,omitempty"`
	Quotas     []QuotaUsage `json:"quotas"`
}
