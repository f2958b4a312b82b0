package dashboard

import (
	"github.com/worklane/hr-admin-backend-go/internal/domain/holiday"
	"github.com/worklane/hr-admin-backend-go/internal/domain/leave"
)

// Counts holds the headline totals shown on the dashboard landing page.
type Counts struct {
	Employees       int64
	ActiveEmployees int64
	LeaveRecords    int64
	Holidays        int64
}

// StatsResponse is the combined response for the dashboard endpoint
type StatsResponse struct {
	EmployeesCount       int64                       `json:"employees_count"`
	ActiveEmployeesCount int64                       `json:"active_employees_count"`
	LeavesCount          int64                       `json:"leaves_count"`
	HolidaysCount        int64                       `json:"holidays_count"`
	RecentLeaves         []leave.LeaveRecordResponse `json:"recent_leaves"`
	UpcomingHolidays     []holiday.HolidayResponse   `json:"upcoming_holidays"`
}
