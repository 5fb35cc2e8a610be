package domain

import "context"

// UserFilter narrows ListActive to a single criterion. Callers set at most
// one field; the repository applies the first non-empty one in declaration
// order.
type UserFilter struct {
	UserID    string
	MobNum    string
	ManagerID string
}

type UserRepository interface {
	Create(ctx context.Context, user User) (User, error)

	// GetByID and GetByMobile match regardless of is_active; they back the
	// delete path, which may target retired rows.
	GetByID(ctx context.Context, userID string) (User, error)
	GetByMobile(ctx context.Context, mobNum string) (User, error)

	GetActiveByID(ctx context.Context, userID string) (User, error)
	ListActive(ctx context.Context, filter UserFilter) ([]User, error)

	Update(ctx context.Context, user User) (User, error)
	Delete(ctx context.Context, userID string) error

	// Reassign retires the row identified by retiredUserID and persists
	// replacement as its successor in a single atomic step.
	Reassign(ctx context.Context, retiredUserID string, replacement User) (User, error)
}
