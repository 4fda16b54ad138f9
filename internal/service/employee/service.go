package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// List loads the full directory and applies the view's conjunctive filters
// in memory, matching the directory page's behavior: free-text substring
// across name/email/role/department plus department and role equality.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	if filter.IsZero() {
		return employees, nil
	}

	filtered := make([]employee.Employee, 0, len(employees))
	for _, emp := range employees {
		if matchesFilter(emp, filter) {
			filtered = append(filtered, emp)
		}
	}
	return filtered, nil
}

func matchesFilter(emp employee.Employee, filter employee.ListFilter) bool {
	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		haystack := strings.ToLower(strings.Join([]string{
			emp.FirstName, emp.LastName, emp.Email, string(emp.Role), emp.Department,
		}, " "))
		if !strings.Contains(haystack, q) {
			return false
		}
	}
	if filter.Department != "" && emp.Department != filter.Department {
		return false
	}
	if filter.Role != "" && string(emp.Role) != filter.Role {
		return false
	}
	return true
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id int) (*employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.EmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.Create(ctx, req.ToEntity())
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id int, req employee.EmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.Update(ctx, id, req.ToEntity())
}

func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int) error {
	// No cascade: leave requests referencing the employee stay behind as
	// dangling references, and departments keep their manual counts.
	return s.employeeRepo.Delete(ctx, id)
}

func (s *EmployeeServiceImpl) Search(ctx context.Context, query string) ([]employee.Employee, error) {
	if strings.TrimSpace(query) == "" {
		return s.employeeRepo.GetAll(ctx)
	}
	return s.employeeRepo.Search(ctx, query)
}

func (s *EmployeeServiceImpl) Recent(ctx context.Context, limit int) ([]employee.Employee, error) {
	if limit <= 0 {
		limit = 5
	}
	return s.employeeRepo.GetRecent(ctx, limit)
}
