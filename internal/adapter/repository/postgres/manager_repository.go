package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/api-sage/user-registry/internal/domain"
	"github.com/google/uuid"
)

type ManagerRepository struct {
	db *sql.DB
}

func NewManagerRepository(db *sql.DB) *ManagerRepository {
	return &ManagerRepository{db: db}
}

func (r *ManagerRepository) ExistsActive(ctx context.Context, managerID string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM managers
	WHERE manager_id = $1
	  AND is_active = TRUE
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, managerID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check manager active: %w", err)
	}

	return exists, nil
}

// SeedDefaults inserts two active managers when the table is empty and
// returns the ids it created, if any. Startup-only convenience.
func (r *ManagerRepository) SeedDefaults(ctx context.Context) ([]domain.Manager, error) {
	const countQuery = `SELECT COUNT(*) FROM managers`

	var count int
	if err := r.db.QueryRowContext(ctx, countQuery).Scan(&count); err != nil {
		return nil, fmt.Errorf("count managers: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	const insertQuery = `INSERT INTO managers (manager_id, is_active) VALUES ($1, TRUE)`

	seeded := make([]domain.Manager, 0, 2)
	for i := 0; i < 2; i++ {
		manager := domain.Manager{ManagerID: uuid.NewString(), IsActive: true}
		if _, err := r.db.ExecContext(ctx, insertQuery, manager.ManagerID); err != nil {
			return seeded, fmt.Errorf("seed manager: %w", err)
		}
		seeded = append(seeded, manager)
	}

	return seeded, nil
}
