package dashboard

import (
	"context"
	"fmt"

	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
)

const (
	recentEmployeeLimit = 5
	upcomingLeaveDays   = 30
)

type Stats struct {
	TotalEmployees   int `json:"totalEmployees"`
	ActiveEmployees  int `json:"activeEmployees"`
	OnLeaveEmployees int `json:"onLeaveEmployees"`
	TotalDepartments int `json:"totalDepartments"`
	PendingLeaves    int `json:"pendingLeaves"`
}

// Overview is the dashboard payload: headline counts plus the newest hires
// and the leave requests starting within the next month.
type Overview struct {
	Stats           Stats                `json:"stats"`
	RecentEmployees []employee.Employee  `json:"recentEmployees"`
	UpcomingLeaves  []leave.LeaveRequest `json:"upcomingLeaves"`
}

type DashboardService struct {
	employeeRepo   employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	leaveRepo      leave.LeaveRepository
}

func NewDashboardService(
	employeeRepo employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	leaveRepo leave.LeaveRepository,
) *DashboardService {
	return &DashboardService{
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		leaveRepo:      leaveRepo,
	}
}

func (s *DashboardService) Overview(ctx context.Context) (Overview, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load employees: %w", err)
	}
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load departments: %w", err)
	}
	leaves, err := s.leaveRepo.GetAll(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load leave requests: %w", err)
	}

	stats := Stats{
		TotalEmployees:   len(employees),
		TotalDepartments: len(departments),
	}
	for _, emp := range employees {
		switch emp.Status {
		case employee.StatusActive:
			stats.ActiveEmployees++
		case employee.StatusOnLeave:
			stats.OnLeaveEmployees++
		}
	}
	for _, req := range leaves {
		if req.Status == leave.StatusPending {
			stats.PendingLeaves++
		}
	}

	recent, err := s.employeeRepo.GetRecent(ctx, recentEmployeeLimit)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load recent employees: %w", err)
	}
	upcoming, err := s.leaveRepo.GetUpcoming(ctx, upcomingLeaveDays)
	if err != nil {
		return Overview{}, fmt.Errorf("failed to load upcoming leave requests: %w", err)
	}
	// Rejected requests are not absences; the widget hides them.
	kept := make([]leave.LeaveRequest, 0, len(upcoming))
	for _, req := range upcoming {
		if req.Status != leave.StatusRejected {
			kept = append(kept, req)
		}
	}

	return Overview{Stats: stats, RecentEmployees: recent, UpcomingLeaves: kept}, nil
}
