package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/api-sage/user-registry/internal/domain"
)

// UserRepository is a map-backed substitute for the postgres implementation,
// used by tests and local experiments.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.UserID] = user

	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return domain.User{}, domain.ErrRecordNotFound
	}

	return user, nil
}

func (r *UserRepository) GetByMobile(_ context.Context, mobNum string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.sortedLocked() {
		if user.MobNum == mobNum {
			return user, nil
		}
	}

	return domain.User{}, domain.ErrRecordNotFound
}

func (r *UserRepository) GetActiveByID(_ context.Context, userID string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok || !user.IsActive {
		return domain.User{}, domain.ErrRecordNotFound
	}

	return user, nil
}

func (r *UserRepository) ListActive(_ context.Context, filter domain.UserFilter) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0)
	for _, user := range r.sortedLocked() {
		if !user.IsActive {
			continue
		}
		switch {
		case filter.UserID != "":
			if user.UserID != filter.UserID {
				continue
			}
		case filter.MobNum != "":
			if user.MobNum != filter.MobNum {
				continue
			}
		case filter.ManagerID != "":
			if user.ManagerID == nil || *user.ManagerID != filter.ManagerID {
				continue
			}
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *UserRepository) Update(_ context.Context, user domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserID]; !ok {
		return domain.User{}, domain.ErrRecordNotFound
	}
	r.users[user.UserID] = user

	return user, nil
}

func (r *UserRepository) Delete(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[userID]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(r.users, userID)

	return nil
}

func (r *UserRepository) Reassign(_ context.Context, retiredUserID string, replacement domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	retired, ok := r.users[retiredUserID]
	if !ok || !retired.IsActive {
		return domain.User{}, domain.ErrRecordNotFound
	}

	retired.IsActive = false
	r.users[retiredUserID] = retired
	r.users[replacement.UserID] = replacement

	return replacement, nil
}

// sortedLocked returns users ordered by creation time for deterministic
// iteration. Callers must hold at least the read lock.
func (r *UserRepository) sortedLocked() []domain.User {
	users := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].UserID < users[j].UserID
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users
}
