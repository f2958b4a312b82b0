package leave

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/repository/memory"
)

type recordFixture struct {
	employeeRepo *memory.EmployeeRepository
	typeRepo     *memory.LeaveTypeRepository
	quotaRepo    *memory.LeaveQuotaRepository
	recordRepo   *memory.LeaveRecordRepository
	quotaSvc     *QuotaService
	recordSvc    *RecordService
}

func newRecordFixture() *recordFixture {
	employeeRepo := memory.NewEmployeeRepository()
	typeRepo := memory.NewLeaveTypeRepository()
	quotaRepo := memory.NewLeaveQuotaRepository(typeRepo)
	recordRepo := memory.NewLeaveRecordRepository(employeeRepo, typeRepo)
	quotaSvc := NewQuotaService(typeRepo, quotaRepo)
	recordSvc := NewRecordService(memory.NewTxManager(), recordRepo, employeeRepo, typeRepo, quotaSvc)
	return &recordFixture{
		employeeRepo: employeeRepo,
		typeRepo:     typeRepo,
		quotaRepo:    quotaRepo,
		recordRepo:   recordRepo,
		quotaSvc:     quotaSvc,
		recordSvc:    recordSvc,
	}
}

func (f *recordFixture) seedEmployee(t *testing.T, name string) employee.Employee {
	t.Helper()
	emp, err := f.employeeRepo.Create(context.Background(), employee.Employee{
		FullName: name,
		Status:   employee.StatusActive,
	})
	require.NoError(t, err)
	return emp
}

func (f *recordFixture) seedProvisionedEmployee(t *testing.T, name string, year int) employee.Employee {
	t.Helper()
	emp := f.seedEmployee(t, name)
	_, err := f.quotaSvc.Provision(context.Background(), emp.ID, year)
	require.NoError(t, err)
	return emp
}

func (f *recordFixture) quotaByKey(t *testing.T, key leave.QuotaKey) leave.LeaveQuota {
	t.Helper()
	quota, err := f.quotaRepo.GetByKey(context.Background(), key)
	require.NoError(t, err)
	return quota
}

// Walks one booking through its whole lifecycle and checks the ledger
// row after every step: create consumes days, edit replaces the old
// consumption with the new one, delete releases everything.
func TestRecordLifecycleKeepsLedgerConsistent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()
	annual := seedLeaveType(t, f.typeRepo, "Annual Leave", 30)
	emp := f.seedProvisionedEmployee(t, "Maya Putri", 2026)
	key := leave.QuotaKey{EmployeeID: emp.ID, LeaveTypeID: annual.ID, Year: 2026}

	created, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: annual.ID,
		StartDate:   "2026-03-02",
		EndDate:     "2026-03-04",
		DaysCount:   3,
	})
	require.NoError(t, err)

	quota := f.quotaByKey(t, key)
	assert.True(t, quota.UsedDays.Equal(decimal.NewFromInt(3)), "used = %s", quota.UsedDays)
	assert.True(t, quota.RemainingDays().Equal(decimal.NewFromInt(27)))

	_, err = f.recordSvc.Update(ctx, leave.UpdateLeaveRecordRequest{
		ID: created.ID,
		CreateLeaveRecordRequest: leave.CreateLeaveRecordRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: annual.ID,
			StartDate:   "2026-03-02",
			EndDate:     "2026-03-06",
			DaysCount:   5,
		},
	})
	require.NoError(t, err)

	quota = f.quotaByKey(t, key)
	assert.True(t, quota.UsedDays.Equal(decimal.NewFromInt(5)), "used = %s", quota.UsedDays)
	assert.True(t, quota.RemainingDays().Equal(decimal.NewFromInt(25)))

	require.NoError(t, f.recordSvc.Delete(ctx, created.ID))

	quota = f.quotaByKey(t, key)
	assert.True(t, quota.UsedDays.IsZero(), "used = %s", quota.UsedDays)
	assert.True(t, quota.RemainingDays().Equal(decimal.NewFromInt(30)))

	_, err = f.recordRepo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRecordNotFound)
}

func TestRecordSupportsHalfDays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()
	annual := seedLeaveType(t, f.typeRepo, "Annual Leave", 12)
	emp := f.seedProvisionedEmployee(t, "Budi Santoso", 2026)

	_, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: annual.ID,
		StartDate:   "2026-04-10",
		EndDate:     "2026-04-10",
		DaysCount:   0.5,
	})
	require.NoError(t, err)

	quota := f.quotaByKey(t, leave.QuotaKey{EmployeeID: emp.ID, LeaveTypeID: annual.ID, Year: 2026})
	assert.True(t, quota.UsedDays.Equal(decimal.NewFromFloat(0.5)))
	assert.True(t, quota.RemainingDays().Equal(decimal.NewFromFloat(11.5)))
}

// Moving a booking to a different leave type must release the days on
// the row it used to point at and consume them on the new one.
func TestUpdateMovesDeltaAcrossLeaveTypes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()
	annual := seedLeaveType(t, f.typeRepo, "Annual Leave", 30)
	sick := seedLeaveType(t, f.typeRepo, "Sick Leave", 14)
	emp := f.seedProvisionedEmployee(t, "Maya Putri", 2026)

	created, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: annual.ID,
		StartDate:   "2026-05-04",
		EndDate:     "2026-05-05",
		DaysCount:   2,
	})
	require.NoError(t, err)

	_, err = f.recordSvc.Update(ctx, leave.UpdateLeaveRecordRequest{
		ID: created.ID,
		CreateLeaveRecordRequest: leave.CreateLeaveRecordRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: sick.ID,
			StartDate:   "2026-05-04",
			EndDate:     "2026-05-05",
			DaysCount:   2,
		},
	})
	require.NoError(t, err)

	annualQuota := f.quotaByKey(t, leave.QuotaKey{EmployeeID: emp.ID, LeaveTypeID: annual.ID, Year: 2026})
	sickQuota := f.quotaByKey(t, leave.QuotaKey{EmployeeID: emp.ID, LeaveTypeID: sick.ID, Year: 2026})
	assert.True(t, annualQuota.UsedDays.IsZero(), "old row keeps %s used", annualQuota.UsedDays)
	assert.True(t, sickQuota.UsedDays.Equal(decimal.NewFromInt(2)))
}

// Moving the start date into another year shifts the delta onto that
// year's ledger row.
func TestUpdateMovesDeltaAcrossYears(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()
	annual := seedLeaveType(t, f.typeRepo, "Annual Leave", 30)
	emp := f.seedProvisionedEmployee(t, "Maya Putri", 2026)
	_, err := f.quotaSvc.Provision(ctx, emp.ID, 2027)
	require.NoError(t, err)

	created, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: annual.ID,
		StartDate:   "2026-12-28",
		EndDate:     "2026-12-30",
		DaysCount:   3,
	})
	require.NoError(t, err)

	_, err = f.recordSvc.Update(ctx, leave.UpdateLeaveRecordRequest{
		ID: created.ID,
		CreateLeaveRecordRequest: leave.CreateLeaveRecordRequest{
			EmployeeID:  emp.ID,
			LeaveTypeID: annual.ID,
			StartDate:   "2027-01-04",
			EndDate:     "2027-01-06",
			DaysCount:   3,
		},
	})
	require.NoError(t, err)

	q2026 := f.quotaByKey(t, leave.QuotaKey{EmployeeID: emp.ID, LeaveTypeID: annual.ID, Year: 2026})
	q2027 := f.quotaByKey(t, leave.QuotaKey{EmployeeID: emp.ID, LeaveTypeID: annual.ID, Year: 2027})
	assert.True(t, q2026.UsedDays.IsZero())
	assert.True(t, q2027.UsedDays.Equal(decimal.NewFromInt(3)))
}

// An employee without a provisioned quota row can still book leave; the
// booking is simply untracked by the ledger.
func TestCreateWithoutQuotaRowSucceeds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()
	annual := seedLeaveType(t, f.typeRepo, "Annual Leave", 30)
	emp := f.seedEmployee(t, "Rina Kusuma")

	created, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: annual.ID,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-02",
		DaysCount:   2,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	quotas, err := f.quotaRepo.GetByEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Empty(t, quotas)
}

func TestDeleteWithoutQuotaRowSucceeds(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()
	annual := seedLeaveType(t, f.typeRepo, "Annual Leave", 30)
	emp := f.seedEmployee(t, "Rina Kusuma")

	created, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  emp.ID,
		LeaveTypeID: annual.ID,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-02",
		DaysCount:   2,
	})
	require.NoError(t, err)

	require.NoError(t, f.recordSvc.Delete(ctx, created.ID))

	_, err = f.recordRepo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, leave.ErrLeaveRecordNotFound)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()
	annual := seedLeaveType(t, f.typeRepo, "Annual Leave", 30)

	_, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  "ghost",
		LeaveTypeID: annual.ID,
		StartDate:   "2026-06-01",
		EndDate:     "2026-06-02",
		DaysCount:   2,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateRejectsInvalidRequest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRecordFixture()

	_, err := f.recordSvc.Create(ctx, leave.CreateLeaveRecordRequest{
		EmployeeID:  "emp-1",
		LeaveTypeID: "type-1",
		StartDate:   "not-a-date",
		EndDate:     "2026-06-02",
		DaysCount:   0,
	})
	assert.Error(t, err)
}
