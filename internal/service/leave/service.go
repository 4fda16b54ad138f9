package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
)

type LeaveServiceImpl struct {
	leaveRepo leave.LeaveRepository
	now       func() time.Time
}

func NewLeaveService(leaveRepo leave.LeaveRepository) leave.LeaveService {
	return &LeaveServiceImpl{leaveRepo: leaveRepo, now: time.Now}
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, error) {
	requests, err := s.leaveRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave requests: %w", err)
	}
	if filter == (leave.Filter{}) {
		return requests, nil
	}

	filtered := make([]leave.LeaveRequest, 0, len(requests))
	for _, req := range requests {
		if filter.Matches(req) {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, id int) (*leave.LeaveRequest, error) {
	return s.leaveRepo.GetByID(ctx, id)
}

func (s *LeaveServiceImpl) ByEmployee(ctx context.Context, employeeID int) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.GetByEmployeeID(ctx, employeeID)
}

func (s *LeaveServiceImpl) ByDateRange(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.GetByDateRange(ctx, start, end)
}

func (s *LeaveServiceImpl) Upcoming(ctx context.Context, days int) ([]leave.LeaveRequest, error) {
	if days <= 0 {
		days = 30
	}
	return s.leaveRepo.GetUpcoming(ctx, days)
}

func (s *LeaveServiceImpl) Create(ctx context.Context, input leave.LeaveRequestInput) (leave.LeaveRequest, error) {
	if err := input.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	req := input.ToEntity()
	if req.RequestDate.IsZero() {
		req.RequestDate = s.now().UTC()
	}
	return s.leaveRepo.Create(ctx, req)
}

// Update edits the date range, type and reason. Edits are allowed in any
// status; the status fields and the request date are preserved by the store.
func (s *LeaveServiceImpl) Update(ctx context.Context, id int, input leave.LeaveRequestInput) (leave.LeaveRequest, error) {
	if err := input.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	return s.leaveRepo.Update(ctx, id, input.ToEntity())
}

// UpdateStatus moves a pending request to Approved or Rejected. Both
// transitions are terminal; anything already processed is refused.
// ApprovedBy and ApprovedDate are set on either transition,
// RejectionReason only on rejection.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id int, status leave.Status, approvedBy string, rejectionReason string) (leave.LeaveRequest, error) {
	current, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	if current == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}
	if current.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrLeaveAlreadyProcessed
	}

	switch status {
	case leave.StatusApproved, leave.StatusRejected:
	default:
		return leave.LeaveRequest{}, leave.ErrInvalidStatus
	}

	approvedAt := s.now().UTC()
	var reason *string
	if status == leave.StatusRejected && rejectionReason != "" {
		reason = &rejectionReason
	}
	return s.leaveRepo.UpdateStatus(ctx, id, status, &approvedBy, &approvedAt, reason)
}

func (s *LeaveServiceImpl) Delete(ctx context.Context, id int) error {
	return s.leaveRepo.Delete(ctx, id)
}
