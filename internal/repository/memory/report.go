package memory

import (
	"context"
	"sort"

	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/domain/report"
)

// ReportRepository composes the other in-memory stores to produce the
// join rows the postgresql repository gets from a single query.
type ReportRepository struct {
	employees *EmployeeRepository
	quotas    *LeaveQuotaRepository
}

func NewReportRepository(employees *EmployeeRepository, quotas *LeaveQuotaRepository) *ReportRepository {
	return &ReportRepository{employees: employees, quotas: quotas}
}

func (r *ReportRepository) EmployeeQuotaRows(ctx context.Context, search string) ([]report.EmployeeQuotas, error) {
	emps, _, err := r.employees.List(ctx, employee.EmployeeFilter{Search: search})
	if err != nil {
		return nil, err
	}

	sort.Slice(emps, func(i, j int) bool {
		return emps[i].FullName < emps[j].FullName
	})

	rows := make([]report.EmployeeQuotas, 0, len(emps))
	for _, emp := range emps {
		quotas, err := r.quotas.GetByEmployee(ctx, emp.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, report.EmployeeQuotas{
			EmployeeID: emp.ID,
			FullName:   emp.FullName,
			Nickname:   emp.Nickname,
			Email:      emp.Email,
			Quotas:     quotas,
		})
	}
	return rows, nil
}
