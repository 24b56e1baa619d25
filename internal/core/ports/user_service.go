package ports

import (
	"context"
	"time"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// SystemUserView is the read model for system users. It never carries the
// password hash.
type SystemUserView struct {
	ID        int        `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Email     string     `json:"email"`
	Role      int        `json:"role"`
	RoleLabel string     `json:"role_label"`
	Created   time.Time  `json:"created"`
	Deleted   *time.Time `json:"deleted,omitempty"`
}

// SystemUserService exposes read and lifecycle operations on system users.
// Mutations return domain.OperationResult per the uniform convention.
type SystemUserService interface {
	GetUsers(ctx context.Context) []SystemUserView
	GetActiveUsers(ctx context.Context) []SystemUserView
	GetUserByID(ctx context.Context, id int) *domain.SystemUser
	GetUserByMail(ctx context.Context, mail string) *domain.SystemUser
	SoftDeleteUserByID(ctx context.Context, id int) domain.OperationResult
	SoftDeleteUserByMail(ctx context.Context, mail string) domain.OperationResult
	HardDeleteUser(ctx context.Context, id int) domain.OperationResult
}
