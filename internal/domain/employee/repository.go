package employee

import "context"

// EmployeeRepository is the per-entity record store contract. Every backend
// (hosted record API, in-memory mock, PostgreSQL) produces identical shapes
// so callers stay backend-agnostic.
type EmployeeRepository interface {
	GetAll(ctx context.Context) ([]Employee, error)
	// GetByID returns (nil, nil) when no record carries the id.
	GetByID(ctx context.Context, id int) (*Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, id int, emp Employee) (Employee, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]Employee, error)
	FilterByDepartment(ctx context.Context, department string) ([]Employee, error)
	FilterByRole(ctx context.Context, role string) ([]Employee, error)
	GetRecent(ctx context.Context, limit int) ([]Employee, error)
}
