package employee

import "context"

type EmployeeService interface {
	List(ctx context.Context, filter ListFilter) ([]Employee, error)
	Get(ctx context.Context, id int) (*Employee, error)
	Create(ctx context.Context, req EmployeeRequest) (Employee, error)
	Update(ctx context.Context, id int, req EmployeeRequest) (Employee, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]Employee, error)
	Recent(ctx context.Context, limit int) ([]Employee, error)
}
