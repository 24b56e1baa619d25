package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

// EmployeeService implements directory CRUD over an EmployeeRepository.
// Every mutation returns a domain.OperationResult; the transport layer maps
// it to a response.
type EmployeeService struct {
	repo  ports.EmployeeRepository
	audit ports.AuditRecorder // optional, nil disables the audit trail
	log   zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, audit ports.AuditRecorder, log zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, audit: audit, log: log}
}

// AddEmployee validates presence of all fields, rejects duplicate emails and
// inserts a new employee with a store-assigned id.
func (s *EmployeeService) AddEmployee(ctx context.Context, mail, firstName, lastName string) domain.OperationResult {
	if mail == "" {
		return domain.Fail("Email is missing.", http.StatusBadRequest)
	}
	if firstName == "" {
		return domain.Fail("First name is missing.", http.StatusBadRequest)
	}
	if lastName == "" {
		return domain.Fail("Last name is missing.", http.StatusBadRequest)
	}

	if existing, err := s.repo.GetByEmail(ctx, mail); err == nil && existing != nil {
		return domain.Fail("An employee with this email already exists.", http.StatusConflict)
	}

	employee := &domain.Employee{
		FirstName: firstName,
		LastName:  lastName,
		Email:     mail,
		Created:   time.Now().UTC(),
	}

	created, err := s.repo.Add(ctx, employee)
	if err != nil {
		s.log.Error().Err(err).Str("email", mail).Msg("failed to add employee")
		return domain.Fail("Failed to add employee.", http.StatusInternalServerError)
	}

	s.record("employee", created.ID, domain.AuditCreated)
	s.log.Info().Int("employee_id", created.ID).Str("email", mail).Msg("employee added")
	return domain.OK()
}

func (s *EmployeeService) GetEmployee(ctx context.Context, id int) *ports.EmployeeView {
	employee, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	view := employeeView(employee)
	return &view
}

func (s *EmployeeService) GetEmployeeByMail(ctx context.Context, mail string) *ports.EmployeeView {
	employee, err := s.repo.GetByEmail(ctx, mail)
	if err != nil {
		return nil
	}
	view := employeeView(employee)
	return &view
}

func (s *EmployeeService) GetEmployees(ctx context.Context) []ports.EmployeeView {
	employees, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list employees")
		return nil
	}
	return employeeViews(employees)
}

func (s *EmployeeService) GetActiveEmployees(ctx context.Context) []ports.EmployeeView {
	employees, err := s.repo.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list active employees")
		return nil
	}
	return employeeViews(employees)
}

func (s *EmployeeService) ReactivateEmployeeByID(ctx context.Context, id int) domain.OperationResult {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return domain.Fail(fmt.Sprintf("Couldn't find employee with id: %d.", id), http.StatusNotFound)
	}
	if err := s.repo.ReactivateByID(ctx, id); err != nil {
		s.log.Error().Err(err).Int("employee_id", id).Msg("failed to reactivate employee")
		return domain.Fail("Failed to reactivate employee.", http.StatusInternalServerError)
	}
	s.record("employee", id, domain.AuditReactivated)
	return domain.OK()
}

func (s *EmployeeService) ReactivateEmployeeByMail(ctx context.Context, mail string) domain.OperationResult {
	employee, err := s.repo.GetByEmail(ctx, mail)
	if err != nil {
		return domain.Fail(fmt.Sprintf("Couldn't find employee with mail: %s.", mail), http.StatusNotFound)
	}
	if err := s.repo.ReactivateByEmail(ctx, mail); err != nil {
		s.log.Error().Err(err).Str("email", mail).Msg("failed to reactivate employee")
		return domain.Fail("Failed to reactivate employee.", http.StatusInternalServerError)
	}
	s.record("employee", employee.ID, domain.AuditReactivated)
	return domain.OK()
}

func (s *EmployeeService) DeactivateEmployeeByID(ctx context.Context, id int) domain.OperationResult {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return domain.Fail(fmt.Sprintf("Couldn't find employee with id: %d.", id), http.StatusNotFound)
	}
	if err := s.repo.SoftDeleteByID(ctx, id); err != nil {
		s.log.Error().Err(err).Int("employee_id", id).Msg("failed to deactivate employee")
		return domain.Fail("Failed to deactivate employee.", http.StatusInternalServerError)
	}
	s.record("employee", id, domain.AuditDeactivated)
	return domain.OK()
}

func (s *EmployeeService) DeactivateEmployeeByMail(ctx context.Context, mail string) domain.OperationResult {
	employee, err := s.repo.GetByEmail(ctx, mail)
	if err != nil {
		return domain.Fail(fmt.Sprintf("Couldn't find employee with mail: %s.", mail), http.StatusNotFound)
	}
	if err := s.repo.SoftDeleteByEmail(ctx, mail); err != nil {
		s.log.Error().Err(err).Str("email", mail).Msg("failed to deactivate employee")
		return domain.Fail("Failed to deactivate employee.", http.StatusInternalServerError)
	}
	s.record("employee", employee.ID, domain.AuditDeactivated)
	return domain.OK()
}

// DeleteEmployee removes the record entirely. Admin-only at the transport
// layer.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, id int) domain.OperationResult {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return domain.Fail(fmt.Sprintf("Couldn't find employee with id: %d.", id), http.StatusNotFound)
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		s.log.Error().Err(err).Int("employee_id", id).Msg("failed to delete employee")
		return domain.Fail("Failed to delete employee.", http.StatusInternalServerError)
	}
	s.record("employee", id, domain.AuditDeleted)
	return domain.OK()
}

func (s *EmployeeService) record(entity string, id int, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Entity:    entity,
		EntityID:  id,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func employeeView(e *domain.Employee) ports.EmployeeView {
	return ports.EmployeeView{
		ID:        e.ID,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Created:   e.Created,
		Deleted:   e.Deleted,
	}
}

func employeeViews(employees []domain.Employee) []ports.EmployeeView {
	views := make([]ports.EmployeeView, 0, len(employees))
	for i := range employees {
		views = append(views, employeeView(&employees[i]))
	}
	return views
}
