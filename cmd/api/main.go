package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/staffhub/staffhub-backend-go/internal/config"
	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
	"github.com/staffhub/staffhub-backend-go/internal/fixtures"
	appHTTP "github.com/staffhub/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/recordapi"
	memoryRepo "github.com/staffhub/staffhub-backend-go/internal/repository/memory"
	"github.com/staffhub/staffhub-backend-go/internal/repository/postgresql"
	recordRepo "github.com/staffhub/staffhub-backend-go/internal/repository/recordapi"
	calendarService "github.com/staffhub/staffhub-backend-go/internal/service/calendar"
	dashboardService "github.com/staffhub/staffhub-backend-go/internal/service/dashboard"
	departmentService "github.com/staffhub/staffhub-backend-go/internal/service/department"
	employeeService "github.com/staffhub/staffhub-backend-go/internal/service/employee"
	leaveService "github.com/staffhub/staffhub-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	employeeRepo, departmentRepo, leaveRepo, err := buildRepositories(cfg)
	if err != nil {
		log.Fatal("Failed to initialize record store: ", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	calendarSvc := calendarService.NewCalendarService(leaveRepo)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, departmentRepo, leaveRepo)

	router := appHTTP.NewRouter(cfg, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Department: appHTTP.NewDepartmentHandler(departmentSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Calendar:   appHTTP.NewCalendarHandler(calendarSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s (store: %s)\n", port, cfg.Store.Backend)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

// buildRepositories wires the record store the configuration selects. The
// three backends expose identical repository interfaces, so everything
// above this point is backend-agnostic.
func buildRepositories(cfg *config.Config) (
	employee.EmployeeRepository,
	department.DepartmentRepository,
	leave.LeaveRepository,
	error,
) {
	switch cfg.Store.Backend {
	case "mock":
		var opts []memoryRepo.Option
		if os.Getenv("MOCK_LATENCY") == "true" {
			opts = append(opts, memoryRepo.WithSimulatedLatency())
		}
		return memoryRepo.NewEmployeeRepository(fixtures.SeedEmployees(), opts...),
			memoryRepo.NewDepartmentRepository(fixtures.SeedDepartments(), opts...),
			memoryRepo.NewLeaveRepository(fixtures.SeedLeaveRequests(), opts...),
			nil

	case "remote":
		client := recordapi.NewClient(cfg.RecordAPI.BaseURL, cfg.RecordAPI.ProjectID, cfg.RecordAPI.PublicKey)
		return recordRepo.NewEmployeeRepository(client),
			recordRepo.NewDepartmentRepository(client),
			recordRepo.NewLeaveRepository(client),
			nil

	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return postgresql.NewEmployeeRepository(db),
			postgresql.NewDepartmentRepository(db),
			postgresql.NewLeaveRepository(db),
			nil

	default:
		return nil, nil, nil, fmt.Errorf("unsupported store backend: %s", cfg.Store.Backend)
	}
}
