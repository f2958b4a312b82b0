package report

import "context"

// ReportService defines business logic for usage reports
type ReportService interface {
	// EmployeeLeaveSummaries returns per-employee quota usage with
	// remaining days and usage percentage derived at read time.
	EmployeeLeaveSummaries(ctx context.Context, search string) ([]EmployeeLeaveSummary, error)
}
