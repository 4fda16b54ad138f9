package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	GetAll(ctx context.Context) ([]LeaveRequest, error)
	// GetByID returns (nil, nil) when no record carries the id.
	GetByID(ctx context.Context, id int) (*LeaveRequest, error)
	GetByEmployeeID(ctx context.Context, employeeID int) ([]LeaveRequest, error)
	// GetByDateRange returns requests whose interval overlaps [start, end].
	GetByDateRange(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)
	GetUpcoming(ctx context.Context, days int) ([]LeaveRequest, error)
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	Update(ctx context.Context, id int, req LeaveRequest) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int, status Status, approvedBy *string, approvedDate *time.Time, rejectionReason *string) (LeaveRequest, error)
	Delete(ctx context.Context, id int) error
}

type LeaveService interface {
	List(ctx context.Context, filter Filter) ([]LeaveRequest, error)
	Get(ctx context.Context, id int) (*LeaveRequest, error)
	ByEmployee(ctx context.Context, employeeID int) ([]LeaveRequest, error)
	ByDateRange(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)
	Upcoming(ctx context.Context, days int) ([]LeaveRequest, error)
	Create(ctx context.Context, input LeaveRequestInput) (LeaveRequest, error)
	Update(ctx context.Context, id int, input LeaveRequestInput) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int, status Status, approvedBy string, rejectionReason string) (LeaveRequest, error)
	Delete(ctx context.Context, id int) error
}
