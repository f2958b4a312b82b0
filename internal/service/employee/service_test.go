package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/repository/memory"
	leaveservice "github.com/worklane/hr-admin-backend-go/internal/service/leave"
)

type employeeFixture struct {
	employeeRepo *memory.EmployeeRepository
	typeRepo     *memory.LeaveTypeRepository
	quotaRepo    *memory.LeaveQuotaRepository
	svc          employee.EmployeeService
}

func newEmployeeFixture() *employeeFixture {
	employeeRepo := memory.NewEmployeeRepository()
	typeRepo := memory.NewLeaveTypeRepository()
	quotaRepo := memory.NewLeaveQuotaRepository(typeRepo)
	quotaSvc := leaveservice.NewQuotaService(typeRepo, quotaRepo)
	svc := NewEmployeeService(memory.NewTxManager(), employeeRepo, quotaSvc)
	return &employeeFixture{
		employeeRepo: employeeRepo,
		typeRepo:     typeRepo,
		quotaRepo:    quotaRepo,
		svc:          svc,
	}
}

func (f *employeeFixture) seedLeaveType(t *testing.T, name string, defaultQuota float64) leave.LeaveType {
	t.Helper()
	created, err := f.typeRepo.Create(context.Background(), leave.LeaveType{
		Name:         name,
		DefaultQuota: decimal.NewFromFloat(defaultQuota),
	})
	require.NoError(t, err)
	return created
}

func TestCreateEmployeeProvisionsQuotas(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()
	f.seedLeaveType(t, "Annual Leave", 30)
	f.seedLeaveType(t, "Sick Leave", 14)

	created, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName: "Maya Putri",
		HireDate: "2024-02-15",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, string(employee.StatusActive), created.Status)

	quotas, err := f.quotaRepo.GetByEmployeeYear(ctx, created.ID, time.Now().Year())
	require.NoError(t, err)
	require.Len(t, quotas, 2)
	for _, q := range quotas {
		assert.True(t, q.UsedDays.IsZero())
		assert.True(t, q.TotalDays.IsPositive())
	}
}

func TestCreateEmployeeWithEmptyCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()

	created, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName: "Budi Santoso",
		HireDate: "2025-01-06",
	})
	require.NoError(t, err, "onboarding must succeed with no leave types configured")

	quotas, err := f.quotaRepo.GetByEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, quotas)
}

func TestCreateEmployeeValidation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()

	tests := []struct {
		name string
		req  employee.CreateEmployeeRequest
	}{
		{"missing full name", employee.CreateEmployeeRequest{HireDate: "2024-01-01"}},
		{"missing hire date", employee.CreateEmployeeRequest{FullName: "X"}},
		{"bad hire date", employee.CreateEmployeeRequest{FullName: "X", HireDate: "01/01/2024"}},
		{"bad status", employee.CreateEmployeeRequest{FullName: "X", HireDate: "2024-01-01", Status: "fired"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.CreateEmployee(ctx, tt.req)
			assert.Error(t, err)
		})
	}
}

func TestGetEmployeeComputesTenure(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()

	hireDate := time.Now().AddDate(-2, -3, 0).Format("2006-01-02")
	created, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName: "Maya Putri",
		HireDate: hireDate,
	})
	require.NoError(t, err)

	got, err := f.svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)

	parsed, err := time.Parse("2006-01-02", hireDate)
	require.NoError(t, err)
	want := employee.Employee{HireDate: parsed}.TenureAt(time.Now())
	assert.Equal(t, want.Years, got.TenureYears)
	assert.Equal(t, want.Months, got.TenureMonths)
}

func TestUpdateEmployeePatchesFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()

	created, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName: "Maya Putri",
		HireDate: "2024-02-15",
	})
	require.NoError(t, err)

	newName := "Maya Putri Dewi"
	newStatus := string(employee.StatusInactive)
	updated, err := f.svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       created.ID,
		FullName: &newName,
		Status:   &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.FullName)
	assert.Equal(t, newStatus, updated.Status)
	assert.Equal(t, "2024-02-15", updated.HireDate, "untouched fields keep their values")
}

func TestDeleteEmployee(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()

	created, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName: "Maya Putri",
		HireDate: "2024-02-15",
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteEmployee(ctx, created.ID))

	_, err = f.svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()

	err := f.svc.DeleteEmployee(ctx, "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployeesFiltersByStatus(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newEmployeeFixture()

	_, err := f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName: "Maya Putri",
		HireDate: "2024-02-15",
	})
	require.NoError(t, err)
	_, err = f.svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		FullName: "Budi Santoso",
		HireDate: "2023-07-01",
		Status:   string(employee.StatusTerminated),
	})
	require.NoError(t, err)

	active, total, err := f.svc.ListEmployees(ctx, employee.EmployeeFilter{Status: string(employee.StatusActive)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, "Maya Putri", active[0].FullName)
}
