package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/infrastructure/db/memory"
)

type captureAudit struct {
	events []domain.AuditEvent
}

func (c *captureAudit) Record(event domain.AuditEvent) {
	c.events = append(c.events, event)
}

func newTestEmployeeService() (*EmployeeService, *captureAudit) {
	audit := &captureAudit{}
	return NewEmployeeService(memory.NewEmployeeRepository(), audit, zerolog.Nop()), audit
}

func TestEmployeeService_AddEmployee_Validation(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := context.Background()

	cases := []struct {
		name    string
		mail    string
		first   string
		last    string
		message string
	}{
		{"missing email", "", "Jane", "Doe", "Email is missing."},
		{"missing first name", "jane@x.com", "", "Doe", "First name is missing."},
		{"missing last name", "jane@x.com", "Jane", "", "Last name is missing."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := svc.AddEmployee(ctx, tc.mail, tc.first, tc.last)
			if result.Success {
				t.Fatalf("expected failure")
			}
			if result.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", result.StatusCode)
			}
			if result.Errors != tc.message {
				t.Fatalf("expected %q, got %q", tc.message, result.Errors)
			}
		})
	}
}

func TestEmployeeService_AddEmployee_DuplicateEmail(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := context.Background()

	if result := svc.AddEmployee(ctx, "jane@x.com", "Jane", "Doe"); !result.Success {
		t.Fatalf("first add failed: %+v", result)
	}

	result := svc.AddEmployee(ctx, "jane@x.com", "Janet", "Doe")
	if result.Success {
		t.Fatalf("expected duplicate to fail")
	}
	if result.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", result.StatusCode)
	}
	if result.Errors != "An employee with this email already exists." {
		t.Fatalf("unexpected message %q", result.Errors)
	}
}

func TestEmployeeService_AddEmployee_Success(t *testing.T) {
	svc, audit := newTestEmployeeService()
	ctx := context.Background()

	result := svc.AddEmployee(ctx, "jane@x.com", "Jane", "Doe")
	if !result.Success {
		t.Fatalf("add failed: %+v", result)
	}
	if result.Errors != "" {
		t.Fatalf("success must carry an empty message, got %q", result.Errors)
	}

	view := svc.GetEmployeeByMail(ctx, "jane@x.com")
	if view == nil {
		t.Fatalf("employee not retrievable")
	}
	if view.ID != 1 {
		t.Fatalf("expected id 1, got %d", view.ID)
	}

	if len(audit.events) != 1 || audit.events[0].Action != domain.AuditCreated {
		t.Fatalf("expected one created audit event, got %+v", audit.events)
	}
}

func TestEmployeeService_Lifecycle(t *testing.T) {
	svc, audit := newTestEmployeeService()
	ctx := context.Background()

	svc.AddEmployee(ctx, "jane@x.com", "Jane", "Doe")

	if result := svc.DeactivateEmployeeByID(ctx, 1); !result.Success {
		t.Fatalf("deactivate failed: %+v", result)
	}
	if active := svc.GetActiveEmployees(ctx); len(active) != 0 {
		t.Fatalf("deactivated employee still active")
	}
	if view := svc.GetEmployee(ctx, 1); view == nil || view.Deleted == nil {
		t.Fatalf("deactivated employee must stay retrievable with a deleted timestamp")
	}

	if result := svc.ReactivateEmployeeByID(ctx, 1); !result.Success {
		t.Fatalf("reactivate failed: %+v", result)
	}
	if active := svc.GetActiveEmployees(ctx); len(active) != 1 {
		t.Fatalf("reactivated employee missing from active listing")
	}

	if result := svc.DeleteEmployee(ctx, 1); !result.Success {
		t.Fatalf("delete failed: %+v", result)
	}
	if all := svc.GetEmployees(ctx); len(all) != 0 {
		t.Fatalf("hard-deleted employee still listed")
	}

	want := []string{domain.AuditCreated, domain.AuditDeactivated, domain.AuditReactivated, domain.AuditDeleted}
	if len(audit.events) != len(want) {
		t.Fatalf("expected %d audit events, got %d", len(want), len(audit.events))
	}
	for i, action := range want {
		if audit.events[i].Action != action {
			t.Fatalf("event %d: expected %s, got %s", i, action, audit.events[i].Action)
		}
	}
}

func TestEmployeeService_NotFoundResults(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := context.Background()

	byID := svc.DeactivateEmployeeByID(ctx, 42)
	if byID.StatusCode != http.StatusNotFound || byID.Errors != "Couldn't find employee with id: 42." {
		t.Fatalf("unexpected result: %+v", byID)
	}

	byMail := svc.ReactivateEmployeeByMail(ctx, "ghost@x.com")
	if byMail.StatusCode != http.StatusNotFound || byMail.Errors != "Couldn't find employee with mail: ghost@x.com." {
		t.Fatalf("unexpected result: %+v", byMail)
	}

	if result := svc.DeleteEmployee(ctx, 42); result.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", result.StatusCode)
	}

	if view := svc.GetEmployee(ctx, 42); view != nil {
		t.Fatalf("expected nil view for missing employee")
	}
}

func TestEmployeeService_ByMailLifecycle(t *testing.T) {
	svc, _ := newTestEmployeeService()
	ctx := context.Background()

	svc.AddEmployee(ctx, "jane@x.com", "Jane", "Doe")

	if result := svc.DeactivateEmployeeByMail(ctx, "jane@x.com"); !result.Success {
		t.Fatalf("deactivate by mail failed: %+v", result)
	}
	if result := svc.ReactivateEmployeeByMail(ctx, "jane@x.com"); !result.Success {
		t.Fatalf("reactivate by mail failed: %+v", result)
	}
}
