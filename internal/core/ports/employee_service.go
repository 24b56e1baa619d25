package ports

import (
	"context"
	"time"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// EmployeeView is the read model for employees.
type EmployeeView struct {
	ID        int        `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Created   time.Time  `json:"created"`
	Deleted   *time.Time `json:"deleted,omitempty"`
}

// EmployeeService exposes read and lifecycle operations on employees.
// Mutations return domain.OperationResult per the uniform convention.
type EmployeeService interface {
	AddEmployee(ctx context.Context, mail, firstName, lastName string) domain.OperationResult
	GetEmployee(ctx context.Context, id int) *EmployeeView
	GetEmployeeByMail(ctx context.Context, mail string) *EmployeeView
	GetEmployees(ctx context.Context) []EmployeeView
	GetActiveEmployees(ctx context.Context) []EmployeeView
	ReactivateEmployeeByID(ctx context.Context, id int) domain.OperationResult
	ReactivateEmployeeByMail(ctx context.Context, mail string) domain.OperationResult
	DeactivateEmployeeByID(ctx context.Context, id int) domain.OperationResult
	DeactivateEmployeeByMail(ctx context.Context, mail string) domain.OperationResult
	DeleteEmployee(ctx context.Context, id int) domain.OperationResult
}
