package models

import (
	"strings"
	"time"

	"github.com/api-sage/user-registry/internal/domain"
)

type CreateUserRequest struct {
	FullName  string `json:"full_name"`
	MobNum    string `json:"mob_num"`
	PanNum    string `json:"pan_num"`
	ManagerID string `json:"manager_id"`
}

// Validate enforces presence only; format checks run in the service so that
// the first failing check wins in the documented order.
func (r CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.FullName) == "" {
		return domain.MissingFieldError{Field: "full_name"}
	}
	if strings.TrimSpace(r.MobNum) == "" {
		return domain.MissingFieldError{Field: "mob_num"}
	}
	if strings.TrimSpace(r.PanNum) == "" {
		return domain.MissingFieldError{Field: "pan_num"}
	}
	if strings.TrimSpace(r.ManagerID) == "" {
		return domain.MissingFieldError{Field: "manager_id"}
	}

	return nil
}

type CreateUserResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type GetUsersRequest struct {
	UserID    string `json:"user_id,omitempty"`
	MobNum    string `json:"mob_num,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`
}

type UserRecord struct {
	UserID    string  `json:"user_id"`
	FullName  string  `json:"full_name"`
	MobNum    string  `json:"mob_num"`
	PanNum    string  `json:"pan_num"`
	ManagerID *string `json:"manager_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	IsActive  bool    `json:"is_active"`
}

type GetUsersResponse struct {
	Users []UserRecord `json:"users"`
}

type DeleteUserRequest struct {
	UserID string `json:"user_id,omitempty"`
	MobNum string `json:"mob_num,omitempty"`
}

func (r DeleteUserRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" && strings.TrimSpace(r.MobNum) == "" {
		return domain.ErrMissingLocator
	}

	return nil
}

type UpdateData struct {
	FullName  string `json:"full_name,omitempty"`
	MobNum    string `json:"mob_num,omitempty"`
	PanNum    string `json:"pan_num,omitempty"`
	ManagerID string `json:"manager_id,omitempty"`
}

type UpdateUserRequest struct {
	UserIDs    []string    `json:"user_ids"`
	UpdateData *UpdateData `json:"update_data"`
}

// Validate rejects only structurally absent payloads. An empty user_ids list
// is a valid no-op batch.
func (r UpdateUserRequest) Validate() error {
	if r.UserIDs == nil || r.UpdateData == nil {
		return domain.ErrMissingUpdatePayload
	}

	return nil
}

// NewUserRecord maps a domain user onto the wire representation with ISO 8601
// timestamps.
func NewUserRecord(user domain.User) UserRecord {
	return UserRecord{
		UserID:    user.UserID,
		FullName:  user.FullName,
		MobNum:    user.MobNum,
		PanNum:    user.PanNum,
		ManagerID: user.ManagerID,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
		IsActive:  user.IsActive,
	}
}

func NewUserRecords(users []domain.User) []UserRecord {
	records := make([]UserRecord, 0, len(users))
	for _, user := range users {
		records = append(records, NewUserRecord(user))
	}

	return records
}
