package memory

import (
	"context"
	"sync"

	"github.com/staffhub/staffhub-backend-go/internal/domain/department"
)

type departmentStore struct {
	mu      sync.RWMutex
	records []department.Department
	opts    options
}

func NewDepartmentRepository(seed []department.Department, opts ...Option) department.DepartmentRepository {
	records := make([]department.Department, len(seed))
	copy(records, seed)
	return &departmentStore{records: records, opts: newOptions(opts)}
}

func (s *departmentStore) GetAll(ctx context.Context) ([]department.Department, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]department.Department, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *departmentStore) GetByID(ctx context.Context, id int) (*department.Department, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, dept := range s.records {
		if dept.ID == id {
			found := dept
			return &found, nil
		}
	}
	return nil, nil
}

func (s *departmentStore) Create(ctx context.Context, dept department.Department) (department.Department, error) {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.records {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	dept.ID = maxID + 1
	s.records = append(s.records, dept)
	return dept, nil
}

func (s *departmentStore) Update(ctx context.Context, id int, dept department.Department) (department.Department, error) {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.ID == id {
			dept.ID = id
			s.records[i] = dept
			return dept, nil
		}
	}
	return department.Department{}, department.ErrDepartmentNotFound
}

func (s *departmentStore) Delete(ctx context.Context, id int) error {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return department.ErrDepartmentNotFound
}
