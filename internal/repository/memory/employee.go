package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
)

type employeeStore struct {
	mu      sync.RWMutex
	records []employee.Employee
	opts    options
}

func NewEmployeeRepository(seed []employee.Employee, opts ...Option) employee.EmployeeRepository {
	records := make([]employee.Employee, len(seed))
	copy(records, seed)
	return &employeeStore{records: records, opts: newOptions(opts)}
}

func (s *employeeStore) GetAll(ctx context.Context) ([]employee.Employee, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]employee.Employee, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *employeeStore) GetByID(ctx context.Context, id int) (*employee.Employee, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, emp := range s.records {
		if emp.ID == id {
			found := emp
			return &found, nil
		}
	}
	return nil, nil
}

func (s *employeeStore) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	maxID := 0
	for _, existing := range s.records {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	emp.ID = maxID + 1
	s.records = append(s.records, emp)
	return emp, nil
}

func (s *employeeStore) Update(ctx context.Context, id int, emp employee.Employee) (employee.Employee, error) {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.ID == id {
			emp.ID = id
			s.records[i] = emp
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *employeeStore) Delete(ctx context.Context, id int) error {
	s.opts.delay()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.records {
		if existing.ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

func (s *employeeStore) Search(ctx context.Context, query string) ([]employee.Employee, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []employee.Employee
	for _, emp := range s.records {
		haystack := strings.ToLower(strings.Join([]string{
			emp.FirstName, emp.LastName, emp.Email, string(emp.Role), emp.Department,
		}, " "))
		if strings.Contains(haystack, q) {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (s *employeeStore) FilterByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []employee.Employee
	for _, emp := range s.records {
		if emp.Department == department {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (s *employeeStore) FilterByRole(ctx context.Context, role string) ([]employee.Employee, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []employee.Employee
	for _, emp := range s.records {
		if string(emp.Role) == role {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (s *employeeStore) GetRecent(ctx context.Context, limit int) ([]employee.Employee, error) {
	s.opts.delay()
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]employee.Employee, len(s.records))
	copy(out, s.records)
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartDate.After(out[j].StartDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
