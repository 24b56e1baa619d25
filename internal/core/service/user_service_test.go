package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/infrastructure/db/memory"
)

func newTestUserService(t *testing.T) (*SystemUserService, *memory.UserRepository) {
	t.Helper()
	repo := memory.NewUserRepository()
	return NewSystemUserService(repo, nil, zerolog.Nop()), repo
}

func seedSystemUser(t *testing.T, repo *memory.UserRepository, email string, role int) *domain.SystemUser {
	t.Helper()
	user, err := repo.Add(context.Background(), &domain.SystemUser{
		FirstName:    "Test",
		LastName:     "User",
		Email:        email,
		PasswordHash: "$2a$10$notarealhash",
		Role:         role,
		Created:      time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestSystemUserService_ViewsHideHashAndMapRoles(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	seedSystemUser(t, repo, "admin@x.com", domain.RoleAdmin)
	seedSystemUser(t, repo, "reg@x.com", domain.RoleRegular)
	seedSystemUser(t, repo, "odd@x.com", 9)

	views := svc.GetUsers(ctx)
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	if views[0].RoleLabel != "Admin" || views[1].RoleLabel != "Regular" || views[2].RoleLabel != "9" {
		t.Fatalf("unexpected role labels: %q %q %q", views[0].RoleLabel, views[1].RoleLabel, views[2].RoleLabel)
	}
}

func TestSystemUserService_SoftDeleteByID_IsSoft(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	user := seedSystemUser(t, repo, "jane@x.com", domain.RoleRegular)

	result := svc.SoftDeleteUserByID(ctx, user.ID)
	if !result.Success {
		t.Fatalf("soft delete failed: %+v", result)
	}

	// The record must survive the soft delete, marked inactive.
	got := svc.GetUserByID(ctx, user.ID)
	if got == nil {
		t.Fatalf("soft-deleted user no longer retrievable by id")
	}
	if got.Deleted == nil {
		t.Fatalf("soft delete did not set the deleted timestamp")
	}
	if active := svc.GetActiveUsers(ctx); len(active) != 0 {
		t.Fatalf("soft-deleted user still in active listing")
	}
}

func TestSystemUserService_SoftDeleteByMail(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	seedSystemUser(t, repo, "jane@x.com", domain.RoleRegular)

	if result := svc.SoftDeleteUserByMail(ctx, "jane@x.com"); !result.Success {
		t.Fatalf("soft delete by mail failed: %+v", result)
	}

	result := svc.SoftDeleteUserByMail(ctx, "ghost@x.com")
	if result.Success || result.StatusCode != http.StatusNotFound || result.Errors != "User not found" {
		t.Fatalf("unexpected result for missing user: %+v", result)
	}
}

func TestSystemUserService_HardDelete(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	user := seedSystemUser(t, repo, "jane@x.com", domain.RoleRegular)

	if result := svc.HardDeleteUser(ctx, user.ID); !result.Success {
		t.Fatalf("hard delete failed: %+v", result)
	}
	if got := svc.GetUserByID(ctx, user.ID); got != nil {
		t.Fatalf("hard-deleted user still retrievable")
	}

	result := svc.HardDeleteUser(ctx, user.ID)
	if result.Success || result.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for repeated delete, got %+v", result)
	}
}

func TestSystemUserService_GetUserByMail(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	seedSystemUser(t, repo, "jane@x.com", domain.RoleRegular)

	if got := svc.GetUserByMail(ctx, "jane@x.com"); got == nil || got.Email != "jane@x.com" {
		t.Fatalf("unexpected lookup result: %+v", got)
	}
	if got := svc.GetUserByMail(ctx, "ghost@x.com"); got != nil {
		t.Fatalf("expected nil for unknown mail")
	}
}
