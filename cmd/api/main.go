package main

import (
	"fmt"
	"net/http"

	"github.com/worklane/hr-admin-backend-go/internal/config"
	appHTTP "github.com/worklane/hr-admin-backend-go/internal/handler/http"
	"github.com/worklane/hr-admin-backend-go/internal/pkg/database"
	"github.com/worklane/hr-admin-backend-go/internal/repository/postgresql"
	dashboardService "github.com/worklane/hr-admin-backend-go/internal/service/dashboard"
	employeeService "github.com/worklane/hr-admin-backend-go/internal/service/employee"
	holidayService "github.com/worklane/hr-admin-backend-go/internal/service/holiday"
	"github.com/worklane/hr-admin-backend-go/internal/service/leave"
	reportService "github.com/worklane/hr-admin-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leaveQuotaRepo := postgresql.NewLeaveQuotaRepository(db)
	leaveRecordRepo := postgresql.NewLeaveRecordRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)
	txManager := postgresql.NewTxManager(db)

	quotaSvc := leave.NewQuotaService(leaveTypeRepo, leaveQuotaRepo)
	recordSvc := leave.NewRecordService(txManager, leaveRecordRepo, employeeRepo, leaveTypeRepo, quotaSvc)
	leaveSvc := leave.NewLeaveService(leaveTypeRepo, leaveQuotaRepo, leaveRecordRepo, recordSvc, quotaSvc)
	employeeSvc := employeeService.NewEmployeeService(txManager, employeeRepo, quotaSvc)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	reportSvc := reportService.NewReportService(reportRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, holidayRepo)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(cfg, employeeHandler, leaveHandler, holidayHandler, reportHandler, dashboardHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
