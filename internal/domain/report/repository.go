package report

import "context"

// ReportRepository defines the interface for report data access
type ReportRepository interface {
	// EmployeeQuotaRows returns every employee with their quota rows and
	// leave-type names, optionally filtered by a name/nickname/email search.
	EmployeeQuotaRows(ctx context.Context, search string) ([]EmployeeQuotas, error)
}
