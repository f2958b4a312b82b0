package postgresql

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/domain/report"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

// EmployeeQuotaRows implements report.ReportRepository.
// Left join keeps employees without quota rows in the report.
func (r *reportRepositoryImpl) EmployeeQuotaRows(ctx context.Context, search string) ([]report.EmployeeQuotas, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.full_name, e.nickname, e.email,
			   lq.id, lq.leave_type_id, lq.year, lq.total_days, lq.used_days,
			   lt.name, lt.description
		FROM employees e
		LEFT JOIN employee_leave_quotas lq ON lq.employee_id = e.id
		LEFT JOIN leave_types lt ON lq.leave_type_id = lt.id
	`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE e.full_name ILIKE $1 OR e.nickname ILIKE $1 OR e.email ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY e.full_name, lq.year DESC, lt.name`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]report.EmployeeQuotas, 0)
	index := make(map[string]int)

	for rows.Next() {
		var (
			emp   report.EmployeeQuotas
			quota leave.LeaveQuota
		)
		// Quota columns are nullable because of the left join.
		var (
			quotaID     *string
			leaveTypeID *string
			year        *int
			totalDays   decimal.NullDecimal
			usedDays    decimal.NullDecimal
		)
		if err := rows.Scan(
			&emp.EmployeeID, &emp.FullName, &emp.Nickname, &emp.Email,
			&quotaID, &leaveTypeID, &year, &totalDays, &usedDays,
			&quota.LeaveTypeName, &quota.LeaveTypeDescription,
		); err != nil {
			return nil, err
		}

		i, ok := index[emp.EmployeeID]
		if !ok {
			emp.Quotas = make([]leave.LeaveQuota, 0)
			summaries = append(summaries, emp)
			i = len(summaries) - 1
			index[emp.EmployeeID] = i
		}

		if quotaID != nil {
			quota.ID = *quotaID
			quota.EmployeeID = emp.EmployeeID
			quota.LeaveTypeID = *leaveTypeID
			quota.Year = *year
			quota.TotalDays = totalDays.Decimal
			quota.UsedDays = usedDays.Decimal
			summaries[i].Quotas = append(summaries[i].Quotas, quota)
		}
	}

	return summaries, nil
}
