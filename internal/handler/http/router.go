package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/staffhub/staffhub-backend-go/internal/config"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/middleware"
)

type Handlers struct {
	Employee   EmployeeHandler
	Department DepartmentHandler
	Leave      LeaveHandler
	Calendar   CalendarHandler
	Dashboard  DashboardHandler
}

func NewRouter(cfg *config.Config, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.ActorHeader},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  logLevel(cfg.App.LogLevel),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(middleware.Actor)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Get("/search", h.Employee.SearchEmployees)
			r.Get("/recent", h.Employee.RecentEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Employee.GetEmployee)
				r.Put("/", h.Employee.UpdateEmployee)
				r.Delete("/", h.Employee.DeleteEmployee)
			})
		})

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", h.Department.ListDepartments)
			r.Post("/", h.Department.CreateDepartment)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Department.GetDepartment)
				r.Put("/", h.Department.UpdateDepartment)
				r.Delete("/", h.Department.DeleteDepartment)
			})
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.Leave.ListLeaves)
			r.Post("/", h.Leave.CreateLeave)
			r.Get("/upcoming", h.Leave.UpcomingLeaves)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Leave.GetLeave)
				r.Put("/", h.Leave.UpdateLeave)
				r.Patch("/status", h.Leave.UpdateLeaveStatus)
				r.Delete("/", h.Leave.DeleteLeave)
			})
		})

		r.Route("/calendar", func(r chi.Router) {
			r.Get("/", h.Calendar.GetMonth)
			r.Get("/resolve", h.Calendar.ResolveDay)
		})

		r.Get("/dashboard", h.Dashboard.GetOverview)
	})

	return r
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
