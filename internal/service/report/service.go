package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/worklane/hr-admin-backend-go/internal/domain/report"
)

var oneHundred = decimal.NewFromInt(100)

type ReportServiceImpl struct {
	reportRepository report.ReportRepository
}

func NewReportService(reportRepository report.ReportRepository) report.ReportService {
	return &ReportServiceImpl{reportRepository: reportRepository}
}

// EmployeeLeaveSummaries implements report.ReportService. Remaining days
// and usage percentage are derived from the stored totals at read time; a
// zero-total quota reports zero percent rather than dividing by zero.
func (s *ReportServiceImpl) EmployeeLeaveSummaries(ctx context.Context, search string) ([]report.EmployeeLeaveSummary, error) {
	rows, err := s.reportRepository.EmployeeQuotaRows(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee quota rows: %w", err)
	}

	summaries := make([]report.EmployeeLeaveSummary, 0, len(rows))
	for _, row := range rows {
		summary := report.EmployeeLeaveSummary{
			EmployeeID: row.EmployeeID,
			FullName:   row.FullName,
			Nickname:   row.Nickname,
			Email:      row.Email,
			Quotas:     make([]report.QuotaUsage, 0, len(row.Quotas)),
		}

		for _, quota := range row.Quotas {
			usage := report.QuotaUsage{
				Year:                 quota.Year,
				TotalDays:            quota.TotalDays.InexactFloat64(),
				UsedDays:             quota.UsedDays.InexactFloat64(),
				RemainingDays:        quota.RemainingDays().InexactFloat64(),
				LeaveTypeDescription: quota.LeaveTypeDescription,
			}
			if quota.LeaveTypeName != nil {
				usage.LeaveTypeName = *quota.LeaveTypeName
			}
			if quota.TotalDays.IsPositive() {
				usage.UsagePercent = quota.UsedDays.Div(quota.TotalDays).Mul(oneHundred).Round(1).InexactFloat64()
			}
			summary.Quotas = append(summary.Quotas, usage)
		}

		summaries = append(summaries, summary)
	}
	return summaries, nil
}
