package domain

import "time"

type User struct {
	UserID    string
	FullName  string
	MobNum    string
	PanNum    string
	ManagerID *string
	CreatedAt time.Time
	UpdatedAt time.Time
	IsActive  bool
}

// HasManager reports whether the record carries a manager reference.
func (u User) HasManager() bool {
	return u.ManagerID != nil && *u.ManagerID != ""
}
