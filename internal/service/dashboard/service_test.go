package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worklane/hr-admin-backend-go/internal/domain/dashboard"
	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
	"github.com/worklane/hr-admin-backend-go/internal/repository/memory"
)

type dashboardFixture struct {
	employeeRepo *memory.EmployeeRepository
	typeRepo     *memory.LeaveTypeRepository
	recordRepo   *memory.LeaveRecordRepository
	holidayRepo  *memory.HolidayRepository
	svc          dashboard.DashboardService
}

func newDashboardFixture() *dashboardFixture {
	employeeRepo := memory.NewEmployeeRepository()
	typeRepo := memory.NewLeaveTypeRepository()
	recordRepo := memory.NewLeaveRecordRepository(employeeRepo, typeRepo)
	holidayRepo := memory.NewHolidayRepository()
	dashboardRepo := memory.NewDashboardRepository(employeeRepo, recordRepo, holidayRepo)
	return &dashboardFixture{
		employeeRepo: employeeRepo,
		typeRepo:     typeRepo,
		recordRepo:   recordRepo,
		holidayRepo:  holidayRepo,
		svc:          NewDashboardService(dashboardRepo, holidayRepo),
	}
}

func TestGetStatsCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newDashboardFixture()

	_, err := f.employeeRepo.Create(ctx, employee.Employee{FullName: "Maya Putri", Status: employee.StatusActive})
	require.NoError(t, err)
	_, err = f.employeeRepo.Create(ctx, employee.Employee{FullName: "Budi Santoso", Status: employee.StatusTerminated})
	require.NoError(t, err)

	_, err = f.holidayRepo.Create(ctx, holiday.Holiday{Name: "Christmas", Date: time.Now().AddDate(0, 1, 0)})
	require.NoError(t, err)

	stats, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.EmployeesCount)
	assert.Equal(t, int64(1), stats.ActiveEmployeesCount)
	assert.Equal(t, int64(0), stats.LeavesCount)
	assert.Equal(t, int64(1), stats.HolidaysCount)
}

func TestGetStatsLimitsRecentLeavesAndUpcomingHolidays(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newDashboardFixture()

	emp, err := f.employeeRepo.Create(ctx, employee.Employee{FullName: "Maya Putri", Status: employee.StatusActive})
	require.NoError(t, err)
	leaveType, err := f.typeRepo.Create(ctx, leave.LeaveType{Name: "Annual Leave", DefaultQuota: decimal.NewFromInt(30)})
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		start := time.Date(2026, time.March, 2+i, 0, 0, 0, 0, time.UTC)
		_, err = f.recordRepo.Create(ctx, leave.LeaveRecord{
			EmployeeID:  emp.ID,
			LeaveTypeID: leaveType.ID,
			StartDate:   start,
			EndDate:     start,
			DaysCount:   decimal.NewFromInt(1),
		})
		require.NoError(t, err)
	}

	for i := 0; i < 8; i++ {
		_, err = f.holidayRepo.Create(ctx, holiday.Holiday{
			Name: "Holiday",
			Date: time.Now().AddDate(0, 0, 7*(i+1)),
		})
		require.NoError(t, err)
	}
	// Past holidays count toward the total but never show as upcoming.
	_, err = f.holidayRepo.Create(ctx, holiday.Holiday{
		Name: "Past Holiday",
		Date: time.Now().AddDate(0, -1, 0),
	})
	require.NoError(t, err)

	stats, err := f.svc.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.LeavesCount)
	assert.Equal(t, int64(9), stats.HolidaysCount)
	assert.Len(t, stats.RecentLeaves, 5)
	assert.Len(t, stats.UpcomingHolidays, 5)
	for _, h := range stats.UpcomingHolidays {
		assert.NotEqual(t, "Past Holiday", h.Name)
	}
}
