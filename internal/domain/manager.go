package domain

type Manager struct {
	ManagerID string
	IsActive  bool
}
