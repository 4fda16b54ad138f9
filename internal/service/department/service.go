package department

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	departmentRepo department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{departmentRepo: departmentRepo}
}

func (s *DepartmentServiceImpl) List(ctx context.Context, query string) ([]department.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	if strings.TrimSpace(query) == "" {
		return departments, nil
	}

	q := strings.ToLower(query)
	filtered := make([]department.Department, 0, len(departments))
	for _, dept := range departments {
		if strings.Contains(strings.ToLower(dept.Name), q) ||
			strings.Contains(strings.ToLower(dept.Description), q) {
			filtered = append(filtered, dept)
		}
	}
	return filtered, nil
}

func (s *DepartmentServiceImpl) Get(ctx context.Context, id int) (*department.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

func (s *DepartmentServiceImpl) Create(ctx context.Context, req department.DepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}
	// ManagerID is stored as given. It is a weak reference; no check against
	// the employee directory happens here or anywhere else.
	return s.departmentRepo.Create(ctx, req.ToEntity())
}

func (s *DepartmentServiceImpl) Update(ctx context.Context, id int, req department.DepartmentRequest) (department.Department, error) {
	if err := req.Validate(); err != nil {
		return department.Department{}, err
	}
	return s.departmentRepo.Update(ctx, id, req.ToEntity())
}

func (s *DepartmentServiceImpl) Delete(ctx context.Context, id int) error {
	return s.departmentRepo.Delete(ctx, id)
}
