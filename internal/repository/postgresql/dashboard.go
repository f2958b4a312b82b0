package postgresql

import (
	"context"

	"github.com/worklane/hr-admin-backend-go/internal/domain/dashboard"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// Counts implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) Counts(ctx context.Context) (dashboard.Counts, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT
			(SELECT COUNT(*) FROM employees),
			(SELECT COUNT(*) FROM employees WHERE status = 'active'),
			(SELECT COUNT(*) FROM leave_records),
			(SELECT COUNT(*) FROM company_holidays)
	`

	var counts dashboard.Counts
	err := q.QueryRow(ctx, query).Scan(
		&counts.Employees, &counts.ActiveEmployees,
		&counts.LeaveRecords, &counts.Holidays,
	)
	if err != nil {
		return dashboard.Counts{}, err
	}

	return counts, nil
}

// RecentLeaves implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) RecentLeaves(ctx context.Context, limit int) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT lr.id, lr.employee_id, lr.leave_type_id, lr.start_date, lr.end_date,
			   lr.days_count, lr.reason, lr.notes, lr.created_at, lr.updated_at,
			   e.full_name AS employee_name, lt.name AS leave_type_name
		FROM leave_records lr
		JOIN employees e ON lr.employee_id = e.id
		JOIN leave_types lt ON lr.leave_type_id = lt.id
		ORDER BY lr.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]leave.LeaveRecord, 0)
	for rows.Next() {
		var record leave.LeaveRecord
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.LeaveTypeID,
			&record.StartDate, &record.EndDate, &record.DaysCount,
			&record.Reason, &record.Notes, &record.CreatedAt, &record.UpdatedAt,
			&record.EmployeeName, &record.LeaveTypeName,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}
