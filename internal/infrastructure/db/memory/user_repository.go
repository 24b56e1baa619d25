package memory

import (
	"context"
	"sync"
	"time"

	"github.com/peopledesk/workforce-api/internal/core/domain"
)

// UserRepository is a process-lifetime store for system users. Records live
// in a map keyed by id with an incrementally maintained email index; ids are
// assigned monotonically starting at 1 and never reused. All access is
// serialized by a mutex.
type UserRepository struct {
	mu      sync.Mutex
	users   map[int]*domain.SystemUser
	byEmail map[string]int
	nextID  int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:   make(map[int]*domain.SystemUser),
		byEmail: make(map[string]int),
		nextID:  1,
	}
}

// Add stores the user, assigning a fresh id when the record carries the
// unassigned sentinel 0. The returned value is a copy of the stored record.
func (r *UserRepository) Add(_ context.Context, user *domain.SystemUser) (*domain.SystemUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *user
	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
	} else if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}

	r.users[stored.ID] = &stored
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int) (*domain.SystemUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneUser(r.users[id])
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*domain.SystemUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(r.users[id])
}

func (r *UserRepository) List(_ context.Context) ([]domain.SystemUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(*domain.SystemUser) bool { return true }), nil
}

func (r *UserRepository) ListActive(_ context.Context) ([]domain.SystemUser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collect(func(u *domain.SystemUser) bool { return u.Deleted == nil }), nil
}

func (r *UserRepository) SoftDeleteByID(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	now := time.Now().UTC()
	user.Deleted = &now
	return nil
}

func (r *UserRepository) SoftDeleteByEmail(_ context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	now := time.Now().UTC()
	r.users[id].Deleted = &now
	return nil
}

func (r *UserRepository) HardDelete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	// Only drop the email index entry if it still points at this record;
	// a later Add with the same email may have overwritten it.
	if indexed, ok := r.byEmail[user.Email]; ok && indexed == id {
		delete(r.byEmail, user.Email)
	}
	delete(r.users, id)
	return nil
}

// collect returns copies of all records matching keep, ordered by id.
func (r *UserRepository) collect(keep func(*domain.SystemUser) bool) []domain.SystemUser {
	out := make([]domain.SystemUser, 0, len(r.users))
	for id := 1; id < r.nextID; id++ {
		if u, ok := r.users[id]; ok && keep(u) {
			out = append(out, *u)
		}
	}
	return out
}

func cloneUser(u *domain.SystemUser) (*domain.SystemUser, error) {
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}
