package leave

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/repository/memory"
)

func newQuotaFixture() (*memory.LeaveTypeRepository, *memory.LeaveQuotaRepository, *QuotaService) {
	typeRepo := memory.NewLeaveTypeRepository()
	quotaRepo := memory.NewLeaveQuotaRepository(typeRepo)
	return typeRepo, quotaRepo, NewQuotaService(typeRepo, quotaRepo)
}

func seedLeaveType(t *testing.T, typeRepo *memory.LeaveTypeRepository, name string, defaultQuota float64) leave.LeaveType {
	t.Helper()
	created, err := typeRepo.Create(context.Background(), leave.LeaveType{
		Name:         name,
		DefaultQuota: decimal.NewFromFloat(defaultQuota),
	})
	require.NoError(t, err)
	return created
}

func TestApplyDeltaIncrementsUsedDays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	typeRepo, quotaRepo, svc := newQuotaFixture()
	annual := seedLeaveType(t, typeRepo, "Annual Leave", 30)

	quota, err := quotaRepo.Create(ctx, leave.LeaveQuota{
		EmployeeID:  "emp-1",
		LeaveTypeID: annual.ID,
		Year:        2026,
		TotalDays:   decimal.NewFromInt(30),
		UsedDays:    decimal.Zero,
	})
	require.NoError(t, err)

	key := leave.QuotaKey{EmployeeID: "emp-1", LeaveTypeID: annual.ID, Year: 2026}
	require.NoError(t, svc.ApplyDelta(ctx, key, decimal.NewFromFloat(3.5)))

	got, err := quotaRepo.GetByID(ctx, quota.ID)
	require.NoError(t, err)
	assert.True(t, got.UsedDays.Equal(decimal.NewFromFloat(3.5)), "used_days = %s", got.UsedDays)
	assert.True(t, got.RemainingDays().Equal(decimal.NewFromFloat(26.5)), "remaining = %s", got.RemainingDays())
}

func TestApplyDeltaClampsAtZero(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	typeRepo, quotaRepo, svc := newQuotaFixture()
	annual := seedLeaveType(t, typeRepo, "Annual Leave", 30)

	quota, err := quotaRepo.Create(ctx, leave.LeaveQuota{
		EmployeeID:  "emp-1",
		LeaveTypeID: annual.ID,
		Year:        2026,
		TotalDays:   decimal.NewFromInt(30),
		UsedDays:    decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	key := leave.QuotaKey{EmployeeID: "emp-1", LeaveTypeID: annual.ID, Year: 2026}
	require.NoError(t, svc.ApplyDelta(ctx, key, decimal.NewFromInt(-5)))

	got, err := quotaRepo.GetByID(ctx, quota.ID)
	require.NoError(t, err)
	assert.True(t, got.UsedDays.IsZero(), "used_days should clamp at zero, got %s", got.UsedDays)
}

func TestApplyDeltaSkipsMissingQuotaRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, _, svc := newQuotaFixture()

	key := leave.QuotaKey{EmployeeID: "nobody", LeaveTypeID: "nothing", Year: 2026}
	err := svc.ApplyDelta(ctx, key, decimal.NewFromInt(3))
	assert.NoError(t, err, "a missing quota row must not fail the booking")
}

func TestProvisionCreatesRowPerLeaveType(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	typeRepo, quotaRepo, svc := newQuotaFixture()
	annual := seedLeaveType(t, typeRepo, "Annual Leave", 30)
	sick := seedLeaveType(t, typeRepo, "Sick Leave", 14)

	inserted, err := svc.Provision(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	quotas, err := quotaRepo.GetByEmployeeYear(ctx, "emp-1", 2026)
	require.NoError(t, err)
	require.Len(t, quotas, 2)

	byType := map[string]leave.LeaveQuota{}
	for _, q := range quotas {
		byType[q.LeaveTypeID] = q
	}
	assert.True(t, byType[annual.ID].TotalDays.Equal(decimal.NewFromInt(30)))
	assert.True(t, byType[sick.ID].TotalDays.Equal(decimal.NewFromInt(14)))
	for _, q := range quotas {
		assert.True(t, q.UsedDays.IsZero())
	}
}

func TestProvisionIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	typeRepo, quotaRepo, svc := newQuotaFixture()
	seedLeaveType(t, typeRepo, "Annual Leave", 30)

	first, err := svc.Provision(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := svc.Provision(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, second, "re-provisioning must not insert duplicates")

	quotas, err := quotaRepo.GetByEmployeeYear(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Len(t, quotas, 1)
}

func TestProvisionEmptyCatalogIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, quotaRepo, svc := newQuotaFixture()

	inserted, err := svc.Provision(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	quotas, err := quotaRepo.GetByEmployee(ctx, "emp-1")
	require.NoError(t, err)
	assert.Empty(t, quotas)
}

// The plain repository insert carries no key guard; calling it twice for
// the same key really does produce two ledger rows.
func TestUnguardedCreateDuplicatesRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	typeRepo, quotaRepo, _ := newQuotaFixture()
	annual := seedLeaveType(t, typeRepo, "Annual Leave", 30)

	row := leave.LeaveQuota{
		EmployeeID:  "emp-1",
		LeaveTypeID: annual.ID,
		Year:        2026,
		TotalDays:   decimal.NewFromInt(30),
		UsedDays:    decimal.Zero,
	}
	_, err := quotaRepo.Create(ctx, row)
	require.NoError(t, err)
	_, err = quotaRepo.Create(ctx, row)
	require.NoError(t, err)

	quotas, err := quotaRepo.GetByEmployeeYear(ctx, "emp-1", 2026)
	require.NoError(t, err)
	assert.Len(t, quotas, 2)
}

func TestGetByKeyMissingRow(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, quotaRepo, _ := newQuotaFixture()

	_, err := quotaRepo.GetByKey(ctx, leave.QuotaKey{EmployeeID: "emp-1", LeaveTypeID: "lt-1", Year: 2026})
	assert.ErrorIs(t, err, leave.ErrQuotaNotFound)
}

func TestOverrideWritesAbsoluteValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	typeRepo, quotaRepo, svc := newQuotaFixture()
	annual := seedLeaveType(t, typeRepo, "Annual Leave", 30)

	quota, err := quotaRepo.Create(ctx, leave.LeaveQuota{
		EmployeeID:  "emp-1",
		LeaveTypeID: annual.ID,
		Year:        2026,
		TotalDays:   decimal.NewFromInt(30),
		UsedDays:    decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	err = svc.Override(ctx, leave.OverrideQuotasRequest{
		Quotas: []leave.OverrideQuotaItem{
			{QuotaID: quota.ID, TotalDays: 40, UsedDays: 10},
		},
	})
	require.NoError(t, err)

	got, err := quotaRepo.GetByID(ctx, quota.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalDays.Equal(decimal.NewFromInt(40)))
	assert.True(t, got.UsedDays.Equal(decimal.NewFromInt(10)))
}

func TestOverrideValidatesInput(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, _, svc := newQuotaFixture()

	err := svc.Override(ctx, leave.OverrideQuotasRequest{})
	assert.Error(t, err, "empty override payload must be rejected")

	err = svc.Override(ctx, leave.OverrideQuotasRequest{
		Quotas: []leave.OverrideQuotaItem{{QuotaID: "q-1", TotalDays: -1}},
	})
	assert.Error(t, err)
}

func TestOverrideUnknownQuotaFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, _, svc := newQuotaFixture()

	err := svc.Override(ctx, leave.OverrideQuotasRequest{
		Quotas: []leave.OverrideQuotaItem{{QuotaID: "missing", TotalDays: 10, UsedDays: 0}},
	})
	assert.ErrorIs(t, err, leave.ErrQuotaNotFound)
}
