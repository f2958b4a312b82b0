package memory

import (
	"context"

	"github.com/worklane/hr-admin-backend-go/internal/domain/dashboard"
	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// DashboardRepository composes the other in-memory stores for the
// aggregate counts the postgresql repository computes in one query.
type DashboardRepository struct {
	employees *EmployeeRepository
	records   *LeaveRecordRepository
	holidays  *HolidayRepository
}

func NewDashboardRepository(employees *EmployeeRepository, records *LeaveRecordRepository, holidays *HolidayRepository) *DashboardRepository {
	return &DashboardRepository{employees: employees, records: records, holidays: holidays}
}

func (r *DashboardRepository) Counts(ctx context.Context) (dashboard.Counts, error) {
	_, employees, err := r.employees.List(ctx, employee.EmployeeFilter{})
	if err != nil {
		return dashboard.Counts{}, err
	}
	_, active, err := r.employees.List(ctx, employee.EmployeeFilter{Status: string(employee.StatusActive)})
	if err != nil {
		return dashboard.Counts{}, err
	}
	_, records, err := r.records.List(ctx, leave.RecordFilter{})
	if err != nil {
		return dashboard.Counts{}, err
	}
	holidays, err := r.holidays.List(ctx)
	if err != nil {
		return dashboard.Counts{}, err
	}

	return dashboard.Counts{
		Employees:       employees,
		ActiveEmployees: active,
		LeaveRecords:    records,
		Holidays:        int64(len(holidays)),
	}, nil
}

func (r *DashboardRepository) RecentLeaves(ctx context.Context, limit int) ([]leave.LeaveRecord, error) {
	records, _, err := r.records.List(ctx, leave.RecordFilter{Page: 1, Limit: limit})
	if err != nil {
		return nil, err
	}
	return records, nil
}
