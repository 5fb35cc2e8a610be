package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/user-registry/internal/domain"
)

const userColumns = `user_id, full_name, mob_num, pan_num, manager_id, created_at, updated_at, is_active`

type UserRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const query = `
INSERT INTO users (
	user_id,
	full_name,
	mob_num,
	pan_num,
	manager_id,
	created_at,
	updated_at,
	is_active
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

	var created domain.User
	if err := scanUser(r.db.QueryRowContext(
		ctx,
		query,
		user.UserID,
		user.FullName,
		user.MobNum,
		user.PanNum,
		user.ManagerID,
		user.CreatedAt,
		user.UpdatedAt,
		user.IsActive,
	), &created); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (domain.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE user_id = $1`

	return r.getOne(ctx, query, userID)
}

func (r *UserRepository) GetByMobile(ctx context.Context, mobNum string) (domain.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE mob_num = $1
ORDER BY created_at
LIMIT 1`

	return r.getOne(ctx, query, mobNum)
}

func (r *UserRepository) GetActiveByID(ctx context.Context, userID string) (domain.User, error) {
	const query = `
SELECT ` + userColumns + `
FROM users
WHERE user_id = $1
  AND is_active = TRUE`

	return r.getOne(ctx, query, userID)
}

func (r *UserRepository) ListActive(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	query := `
SELECT ` + userColumns + `
FROM users
WHERE is_active = TRUE`
	params := []any{}

	switch {
	case filter.UserID != "":
		query += ` AND user_id = $1`
		params = append(params, filter.UserID)
	case filter.MobNum != "":
		query += ` AND mob_num = $1`
		params = append(params, filter.MobNum)
	case filter.ManagerID != "":
		query += ` AND manager_id = $1`
		params = append(params, filter.ManagerID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("list active users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := scanUser(rows, &user); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) (domain.User, error) {
	const query = `
UPDATE users
SET full_name = $2,
    mob_num = $3,
    pan_num = $4,
    manager_id = $5,
    updated_at = $6
WHERE user_id = $1
RETURNING ` + userColumns

	var updated domain.User
	if err := scanUser(r.db.QueryRowContext(
		ctx,
		query,
		user.UserID,
		user.FullName,
		user.MobNum,
		user.PanNum,
		user.ManagerID,
		user.UpdatedAt,
	), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrRecordNotFound
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	return updated, nil
}

func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	const query = `DELETE FROM users WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete user rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

// Reassign retires the old row and inserts the replacement in one
// transaction so a crash cannot leave the user without an active row.
func (r *UserRepository) Reassign(ctx context.Context, retiredUserID string, replacement domain.User) (domain.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.User{}, fmt.Errorf("begin reassign transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const retireQuery = `
UPDATE users
SET is_active = FALSE
WHERE user_id = $1
  AND is_active = TRUE`

	result, execErr := tx.ExecContext(ctx, retireQuery, retiredUserID)
	if execErr != nil {
		err = fmt.Errorf("retire user %s: %w", retiredUserID, execErr)
		return domain.User{}, err
	}
	rows, rowsErr := result.RowsAffected()
	if rowsErr != nil {
		err = fmt.Errorf("retire user rows affected: %w", rowsErr)
		return domain.User{}, err
	}
	if rows == 0 {
		err = domain.ErrRecordNotFound
		return domain.User{}, err
	}

	const insertQuery = `
INSERT INTO users (
	user_id,
	full_name,
	mob_num,
	pan_num,
	manager_id,
	created_at,
	updated_at,
	is_active
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + userColumns

	var created domain.User
	if scanErr := scanUser(tx.QueryRowContext(
		ctx,
		insertQuery,
		replacement.UserID,
		replacement.FullName,
		replacement.MobNum,
		replacement.PanNum,
		replacement.ManagerID,
		replacement.CreatedAt,
		replacement.UpdatedAt,
		replacement.IsActive,
	), &created); scanErr != nil {
		err = fmt.Errorf("insert replacement user: %w", scanErr)
		return domain.User{}, err
	}

	if commitErr := tx.Commit(); commitErr != nil {
		err = fmt.Errorf("commit reassign transaction: %w", commitErr)
		return domain.User{}, err
	}

	return created, nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, param any) (domain.User, error) {
	var user domain.User
	if err := scanUser(r.db.QueryRowContext(ctx, query, param), &user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrRecordNotFound
		}
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

func scanUser(row rowScanner, user *domain.User) error {
	return row.Scan(
		&user.UserID,
		&user.FullName,
		&user.MobNum,
		&user.PanNum,
		&user.ManagerID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.IsActive,
	)
}
