package memory

import (
	"context"
	"sync"
	"time"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// EmployeeRepository is the in-memory employee store. Same structure as
// UserRepository: id-keyed map, email index, monotonic id counter, mutex.
type EmployeeRepository struct {
	mu        sync.Mutex
	employees map[int]*domain.Employee
	byEmail   map[string]int
	nextID    int
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{
		employees: make(map[int]*domain.Employee),
		byEmail:   make(map[string]int),
		nextID:    1,
	}
}

func (r *EmployeeRepository) Add(_ context.Context, employee *domain.Employee) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *employee
	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
	} else if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}

	r.employees[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *EmployeeRepository) GetByID(_ context.Context, id int) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneEmployee(r.employees[id])
}

func (r *EmployeeRepository) GetByEmail(_ context.Context, email string) (*domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(r.employees[id])
}

func (r *EmployeeRepository) List(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(*domain.Employee) bool { return true }), nil
}

func (r *EmployeeRepository) ListActive(_ context.Context) ([]domain.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(e *domain.Employee) bool { return e.Deleted == nil }), nil
}

func (r *EmployeeRepository) SoftDeleteByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	now := time.Now().UTC()
	employee.Deleted = &now
	return nil
}

func (r *EmployeeRepository) SoftDeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	now := time.Now().UTC()
	r.employees[id].Deleted = &now
	return nil
}

func (r *EmployeeRepository) ReactivateByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	employee.Deleted = nil
	return nil
}

func (r *EmployeeRepository) ReactivateByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	r.employees[id].Deleted = nil
	return nil
}

func (r *EmployeeRepository) HardDelete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	employee, ok := r.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	if indexed, ok := r.byEmail[employee.Email]; ok && indexed == id {
		delete(r.byEmail, employee.Email)
	}
	delete(r.employees, id)
	return nil
}

func (r *EmployeeRepository) collect(keep func(*domain.Employee) bool) []domain.Employee {
	out := make([]domain.Employee, 0, len(r.employees))
	for id := 1; id < r.nextID; id++ {
		if e, ok := r.employees[id]; ok && keep(e) {
			out = append(out, *e)
		}
	}
	return out
}

func cloneEmployee(e *domain.Employee) (*domain.Employee, error) {
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	clone := *e
	return &clone, nil
}
