package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/worklane/hr-admin-backend-go/internal/domain/employee"
)

// EmployeeRepository is an in-memory employee.EmployeeRepository.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	emp.ID = uuid.NewString()
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) List(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]employee.Employee, 0)
	for _, emp := range r.employees {
		if filter.Status != "" && string(emp.Status) != filter.Status {
			continue
		}
		if filter.Search != "" && !matchesEmployee(emp, filter.Search) {
			continue
		}
		matched = append(matched, emp)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return paginate(matched, filter.Page, filter.Limit), total, nil
}

func matchesEmployee(emp employee.Employee, search string) bool {
	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(emp.FullName), search) {
		return true
	}
	if emp.Nickname != nil && strings.Contains(strings.ToLower(*emp.Nickname), search) {
		return true
	}
	if emp.Email != nil && strings.Contains(strings.ToLower(*emp.Email), search) {
		return true
	}
	return false
}

func (r *EmployeeRepository) lookup(id string) (employee.Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	return emp, ok
}

func (r *EmployeeRepository) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.employees[emp.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = time.Now()
	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func paginate[T any](items []T, page, limit int) []T {
	if limit <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
