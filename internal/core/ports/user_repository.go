package ports

import (
	"context"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// UserRepository defines the persistence interface for system users.
//
// Add assigns a fresh id when the record carries the unassigned sentinel 0;
// ids are monotonic starting at 1 and never reused. Lookups return
// domain.ErrUserNotFound for missing records.
type UserRepository interface {
	Add(ctx context.Context, user *domain.SystemUser) (*domain.SystemUser, error)
	GetByID(ctx context.Context, id int) (*domain.SystemUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.SystemUser, error)
	List(ctx context.Context) ([]domain.SystemUser, error)
	ListActive(ctx context.Context) ([]domain.SystemUser, error)
	SoftDeleteByID(ctx context.Context, id int) error
	SoftDeleteByEmail(ctx context.Context, email string) error
	HardDelete(ctx context.Context, id int) error
}
