package department

import "context"

type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]Department, error)
	// GetByID returns (nil, nil) when no record carries the id.
	GetByID(ctx context.Context, id int) (*Department, error)
	Create(ctx context.Context, dept Department) (Department, error)
	Update(ctx context.Context, id int, dept Department) (Department, error)
	Delete(ctx context.Context, id int) error
}

type DepartmentService interface {
	List(ctx context.Context, query string) ([]Department, error)
	Get(ctx context.Context, id int) (*Department, error)
	Create(ctx context.Context, req DepartmentRequest) (Department, error)
	Update(ctx context.Context, id int, req DepartmentRequest) (Department, error)
	Delete(ctx context.Context, id int) error
}
