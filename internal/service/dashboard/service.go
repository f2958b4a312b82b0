package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/worklane/hr-admin-backend-go/internal/domain/dashboard"
	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

const (
	recentLeavesLimit     = 5
	upcomingHolidaysLimit = 5
)

type DashboardServiceImpl struct {
	dashboardRepository dashboard.DashboardRepository
	holidayRepository   holiday.HolidayRepository
}

func NewDashboardService(
	dashboardRepository dashboard.DashboardRepository,
	holidayRepository holiday.HolidayRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		dashboardRepository: dashboardRepository,
		holidayRepository:   holidayRepository,
	}
}

// GetStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (dashboard.StatsResponse, error) {
	counts, err := s.dashboardRepository.Counts(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get dashboard counts: %w", err)
	}

	recentLeaves, err := s.dashboardRepository.RecentLeaves(ctx, recentLeavesLimit)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get recent leaves: %w", err)
	}

	today := time.Now().Truncate(24 * time.Hour)
	upcomingHolidays, err := s.holidayRepository.Upcoming(ctx, today, upcomingHolidaysLimit)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to get upcoming holidays: %w", err)
	}

	resp := dashboard.StatsResponse{
		EmployeesCount:       counts.Employees,
		ActiveEmployeesCount: counts.ActiveEmployees,
		LeavesCount:          counts.LeaveRecords,
		HolidaysCount:        counts.Holidays,
		RecentLeaves:         make([]leave.LeaveRecordResponse, 0, len(recentLeaves)),
		UpcomingHolidays:     make([]holiday.HolidayResponse, 0, len(upcomingHolidays)),
	}
	for _, record := range recentLeaves {
		resp.RecentLeaves = append(resp.RecentLeaves, leave.ToLeaveRecordResponse(record))
	}
	for _, h := range upcomingHolidays {
		resp.UpcomingHolidays = append(resp.UpcomingHolidays, holiday.ToResponse(h))
	}
	return resp, nil
}
