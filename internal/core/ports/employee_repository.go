package ports

import (
	"context"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// EmployeeRepository defines the persistence interface for employees.
// Same id-assignment and not-found semantics as UserRepository, with
// domain.ErrEmployeeNotFound for missing records.
type EmployeeRepository interface {
	Add(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	GetByID(ctx context.Context, id int) (*domain.Employee, error)
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	ListActive(ctx context.Context) ([]domain.Employee, error)
	SoftDeleteByID(ctx context.Context, id int) error
	SoftDeleteByEmail(ctx context.Context, email string) error
	ReactivateByID(ctx context.Context, id int) error
	ReactivateByEmail(ctx context.Context, email string) error
	HardDelete(ctx context.Context, id int) error
}
