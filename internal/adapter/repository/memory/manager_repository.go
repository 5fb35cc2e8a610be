package memory

import (
	"context"
	"sync"

	"github.com/api-sage/user-registry/internal/domain"
)

type ManagerRepository struct {
	mu       sync.RWMutex
	managers map[string]domain.Manager
}

func NewManagerRepository(managers ...domain.Manager) *ManagerRepository {
	repo := &ManagerRepository{managers: make(map[string]domain.Manager, len(managers))}
	for _, manager := range managers {
		repo.managers[manager.ManagerID] = manager
	}

	return repo
}

func (r *ManagerRepository) ExistsActive(_ context.Context, managerID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	manager, ok := r.managers[managerID]

	return ok && manager.IsActive, nil
}

// Deactivate flips a manager inactive; used by tests exercising the
// referential guard.
func (r *ManagerRepository) Deactivate(managerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if manager, ok := r.managers[managerID]; ok {
		manager.IsActive = false
		r.managers[managerID] = manager
	}
}
