package memory

import (
	"context"
	"sync"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/leave"
)

type leaveStore struct {
	mu      sync.RWMutex
	records []leave.LeaveRequest
	opts    options
	now     func() time.Time
}

func NewLeaveRepository(seed []leave.LeaveRequest, opts ...Option) leave.LeaveRepository {
	records := make([]leave.LeaveRequest, len(seed))
	copy(records, seed)
	return &leaveStore{records: records, opts: newOptions(opts), now: time.Now}
}

func (s *leaveStore) GetAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]leave.LeaveRequest, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *leaveStore) GetByID(ctx context.Context, id int) (*leave.LeaveRequest, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	if req, _ := s.findLocked(id); req != nil {
		found := *req
		return &found, nil
	}
	return nil, nil
}

func (s *leaveStore) GetByEmployeeID(ctx context.Context, employeeID int) ([]leave.LeaveRequest, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []leave.LeaveRequest
	for _, req := range s.records {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *leaveStore) GetByDateRange(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []leave.LeaveRequest
	for _, req := range s.records {
		// Interval overlap: request starts before the window ends and ends
		// after the window starts.
		if !req.StartDate.After(end) && !req.EndDate.Before(start) {
			out = append(out, req)
		}
	}
	return out, nil
}

func (s *leaveStore) GetUpcoming(ctx context.Context, days int) ([]leave.LeaveRequest, error) {
	today := s.now().Truncate(24 * time.Hour)
	return s.GetByDateRange(ctx, today, today.AddDate(0, 0, days))
}

func (s *leaveStore) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.records {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	req.ID = maxID + 1
	s.records = append(s.records, req)
	return req, nil
}

func (s *leaveStore) Update(ctx context.Context, id int, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, i := s.findLocked(id)
	if existing == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}

	// Status fields and the request date never move through a plain update.
	req.ID = id
	req.Status = existing.Status
	req.RequestDate = existing.RequestDate
	req.ApprovedBy = existing.ApprovedBy
	req.ApprovedDate = existing.ApprovedDate
	req.RejectionReason = existing.RejectionReason
	s.records[i] = req
	return req, nil
}

func (s *leaveStore) UpdateStatus(ctx context.Context, id int, status leave.Status, approvedBy *string, approvedDate *time.Time, rejectionReason *string) (leave.LeaveRequest, error) {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, i := s.findLocked(id)
	if existing == nil {
		return leave.LeaveRequest{}, leave.ErrLeaveNotFound
	}

	updated := *existing
	updated.Status = status
	updated.ApprovedBy = approvedBy
	updated.ApprovedDate = approvedDate
	updated.RejectionReason = rejectionReason
	s.records[i] = updated
	return updated, nil
}

func (s *leaveStore) Delete(ctx context.Context, id int) error {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, i := s.findLocked(id); existing != nil {
		s.records = append(s.records[:i], s.records[i+1:]...)
		return nil
	}
	return leave.ErrLeaveNotFound
}

// findLocked assumes the caller holds at least a read lock.
func (s *leaveStore) findLocked(id int) (*leave.LeaveRequest, int) {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], i
		}
	}
	return nil, -1
}
