package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/worklane/hr-admin-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	leaveHandler LeaveHandler,
	holidayHandler HolidayHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-admin-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/{id}", employeeHandler.Get)
			r.Put("/{id}", employeeHandler.Update)
			r.Delete("/{id}", employeeHandler.Delete)

			r.Get("/{id}/quotas", leaveHandler.ListEmployeeQuotas)
			r.Put("/{id}/quotas", leaveHandler.OverrideQuotas)
		})

		r.Route("/leave-types", func(r chi.Router) {
			r.Get("/", leaveHandler.ListTypes)
			r.Post("/", leaveHandler.CreateType)
			r.Put("/{id}", leaveHandler.UpdateType)
			r.Delete("/{id}", leaveHandler.DeleteType)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", leaveHandler.ListRecords)
			r.Post("/", leaveHandler.CreateRecord)
			r.Get("/{id}", leaveHandler.GetRecord)
			r.Put("/{id}", leaveHandler.UpdateRecord)
			r.Delete("/{id}", leaveHandler.DeleteRecord)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Create)
			r.Put("/{id}", holidayHandler.Update)
			r.Delete("/{id}", holidayHandler.Delete)
		})

		r.Get("/reports/leave-summary", reportHandler.LeaveSummary)
		r.Get("/dashboard/stats", dashboardHandler.GetStats)
	})

	return r
}
