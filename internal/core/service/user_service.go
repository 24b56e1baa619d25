package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/peopledesk/workforce-api/internal/core/domain"
	"github.com/peopledesk/workforce-api/internal/core/ports"
)

// SystemUserService implements read and lifecycle operations on system
// users. Read operations return views that never expose the password hash.
type SystemUserService struct {
	repo  ports.UserRepository
	audit ports.AuditRecorder // optional, nil disables the audit trail
	log   zerolog.Logger
}

func NewSystemUserService(repo ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *SystemUserService {
	return &SystemUserService{repo: repo, audit: audit, log: log}
}

func (s *SystemUserService) GetUsers(ctx context.Context) []ports.SystemUserView {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list users")
		return nil
	}
	return userViews(users)
}

func (s *SystemUserService) GetActiveUsers(ctx context.Context) []ports.SystemUserView {
	users, err := s.repo.ListActive(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to list active users")
		return nil
	}
	return userViews(users)
}

func (s *SystemUserService) GetUserByID(ctx context.Context, id int) *domain.SystemUser {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil
	}
	return user
}

func (s *SystemUserService) GetUserByMail(ctx context.Context, mail string) *domain.SystemUser {
	user, err := s.repo.GetByEmail(ctx, mail)
	if err != nil {
		return nil
	}
	return user
}

// SoftDeleteUserByID marks a user inactive by setting its deleted timestamp.
// The record stays retrievable by id until a hard delete.
func (s *SystemUserService) SoftDeleteUserByID(ctx context.Context, id int) domain.OperationResult {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return domain.Fail("User not found", http.StatusNotFound)
	}
	if err := s.repo.SoftDeleteByID(ctx, id); err != nil {
		s.log.Error().Err(err).Int("user_id", id).Msg("failed to soft delete user")
		return domain.Fail("Failed to deactivate user.", http.StatusInternalServerError)
	}
	s.record(id, domain.AuditDeactivated)
	return domain.OK()
}

func (s *SystemUserService) SoftDeleteUserByMail(ctx context.Context, mail string) domain.OperationResult {
	user, err := s.repo.GetByEmail(ctx, mail)
	if err != nil {
		return domain.Fail("User not found", http.StatusNotFound)
	}
	if err := s.repo.SoftDeleteByEmail(ctx, mail); err != nil {
		s.log.Error().Err(err).Str("email", mail).Msg("failed to soft delete user")
		return domain.Fail("Failed to deactivate user.", http.StatusInternalServerError)
	}
	s.record(user.ID, domain.AuditDeactivated)
	return domain.OK()
}

// HardDeleteUser removes the record entirely. Admin-only at the transport
// layer.
func (s *SystemUserService) HardDeleteUser(ctx context.Context, id int) domain.OperationResult {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return domain.Fail("User not found", http.StatusNotFound)
	}
	if err := s.repo.HardDelete(ctx, id); err != nil {
		s.log.Error().Err(err).Int("user_id", id).Msg("failed to delete user")
		return domain.Fail("Failed to delete user.", http.StatusInternalServerError)
	}
	s.record(id, domain.AuditDeleted)
	return domain.OK()
}

func (s *SystemUserService) record(id int, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Entity:    "system_user",
		EntityID:  id,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}

func userViews(users []domain.SystemUser) []ports.SystemUserView {
	views := make([]ports.SystemUserView, 0, len(users))
	for i := range users {
		u := &users[i]
		views = append(views, ports.SystemUserView{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
			RoleLabel: domain.RoleLabel(u.Role),
			Created:   u.Created,
			Deleted:   u.Deleted,
		})
	}
	return views
}
