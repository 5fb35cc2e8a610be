package domain

import "context"

type ManagerRepository interface {
	ExistsActive(ctx context.Context, managerID string) (bool, error)
}
