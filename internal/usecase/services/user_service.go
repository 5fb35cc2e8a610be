package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/user-registry/internal/adapter/http/models"
	"github.com/api-sage/user-registry/internal/domain"
	"github.com/api-sage/user-registry/internal/logger"
	"github.com/api-sage/user-registry/internal/validation"
	"github.com/google/uuid"
)

type UserService struct {
	userRepo    domain.UserRepository
	managerRepo domain.ManagerRepository
}

func NewUserService(userRepo domain.UserRepository, managerRepo domain.ManagerRepository) *UserService {
	return &UserService{userRepo: userRepo, managerRepo: managerRepo}
}

// CreateUser runs the checks in fixed order (required fields, mobile format,
// PAN format, manager reference) and persists nothing unless all pass.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.CreateUserResponse, error) {
	logger.Info("user service create user request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service create user validation failed", err, nil)
		return models.CreateUserResponse{}, err
	}

	validMob, ok := validation.Mobile(req.MobNum)
	if !ok {
		logger.Error("user service create user invalid mobile", domain.ErrInvalidMobile, nil)
		return models.CreateUserResponse{}, domain.ErrInvalidMobile
	}

	validPan, ok := validation.PAN(req.PanNum)
	if !ok {
		logger.Error("user service create user invalid pan", domain.ErrInvalidPAN, nil)
		return models.CreateUserResponse{}, domain.ErrInvalidPAN
	}

	managerID := strings.TrimSpace(req.ManagerID)
	active, err := validation.ManagerActive(ctx, s.managerRepo, managerID)
	if err != nil {
		logger.Error("user service create user manager lookup failed", err, logger.Fields{
			"managerId": managerID,
		})
		return models.CreateUserResponse{}, fmt.Errorf("check manager: %w", err)
	}
	if !active {
		logger.Error("user service create user inactive manager", domain.ErrInactiveManager, logger.Fields{
			"managerId": managerID,
		})
		return models.CreateUserResponse{}, domain.ErrInactiveManager
	}

	now := time.Now().UTC()
	user := domain.User{
		UserID:    generateUserID(),
		FullName:  strings.TrimSpace(req.FullName),
		MobNum:    validMob,
		PanNum:    validPan,
		ManagerID: managerRef(managerID),
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		logger.Error("user service create user repository failed", err, logger.Fields{
			"userId": user.UserID,
		})
		return models.CreateUserResponse{}, fmt.Errorf("create user: %w", err)
	}

	logger.Info("user service create user success", logger.Fields{
		"userId":    created.UserID,
		"managerId": managerID,
	})

	return models.CreateUserResponse{
		Message: "User created successfully",
		UserID:  created.UserID,
	}, nil
}

// GetUsers applies at most one filter, in priority order user_id, mob_num,
// manager_id. A mob_num that fails normalization matches nothing.
func (s *UserService) GetUsers(ctx context.Context, req models.GetUsersRequest) (models.GetUsersResponse, error) {
	logger.Info("user service get users request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	var filter domain.UserFilter
	switch {
	case strings.TrimSpace(req.UserID) != "":
		filter.UserID = strings.TrimSpace(req.UserID)
	case strings.TrimSpace(req.MobNum) != "":
		validMob, ok := validation.Mobile(req.MobNum)
		if !ok {
			return models.GetUsersResponse{Users: []models.UserRecord{}}, nil
		}
		filter.MobNum = validMob
	case strings.TrimSpace(req.ManagerID) != "":
		filter.ManagerID = strings.TrimSpace(req.ManagerID)
	}

	users, err := s.userRepo.ListActive(ctx, filter)
	if err != nil {
		logger.Error("user service get users repository failed", err, nil)
		return models.GetUsersResponse{}, fmt.Errorf("list users: %w", err)
	}

	return models.GetUsersResponse{Users: models.NewUserRecords(users)}, nil
}

// DeleteUser removes the row permanently. Unlike manager reassignment this is
// a hard delete; the locator may match a retired row.
func (s *UserService) DeleteUser(ctx context.Context, req models.DeleteUserRequest) error {
	logger.Info("user service delete user request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service delete user validation failed", err, nil)
		return err
	}

	var user domain.User
	var err error
	if userID := strings.TrimSpace(req.UserID); userID != "" {
		user, err = s.userRepo.GetByID(ctx, userID)
	} else {
		validMob, ok := validation.Mobile(req.MobNum)
		if !ok {
			return domain.ErrRecordNotFound
		}
		user, err = s.userRepo.GetByMobile(ctx, validMob)
	}
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.ErrRecordNotFound
		}
		logger.Error("user service delete user lookup failed", err, nil)
		return fmt.Errorf("find user: %w", err)
	}

	if err := s.userRepo.Delete(ctx, user.UserID); err != nil {
		logger.Error("user service delete user repository failed", err, logger.Fields{
			"userId": user.UserID,
		})
		return fmt.Errorf("delete user: %w", err)
	}

	logger.Info("user service delete user success", logger.Fields{
		"userId": user.UserID,
	})

	return nil
}

// UpdateUsers applies update_data to each id independently and in order.
// Missing ids are skipped without notice. An invalid manager reference aborts
// the remaining batch; ids already processed stay committed.
func (s *UserService) UpdateUsers(ctx context.Context, req models.UpdateUserRequest) error {
	logger.Info("user service update users request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("user service update users validation failed", err, nil)
		return err
	}

	update := *req.UpdateData

	for _, id := range req.UserIDs {
		user, err := s.userRepo.GetActiveByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrRecordNotFound) {
				continue
			}
			logger.Error("user service update users lookup failed", err, logger.Fields{
				"userId": id,
			})
			return fmt.Errorf("find user %s: %w", id, err)
		}

		// Values that fail normalization fall back to the stored ones
		// instead of rejecting the request.
		fullName := user.FullName
		if trimmed := strings.TrimSpace(update.FullName); trimmed != "" {
			fullName = trimmed
		}
		mobNum := user.MobNum
		if update.MobNum != "" {
			if validMob, ok := validation.Mobile(update.MobNum); ok {
				mobNum = validMob
			}
		}
		panNum := user.PanNum
		if update.PanNum != "" {
			if validPan, ok := validation.PAN(update.PanNum); ok {
				panNum = validPan
			}
		}

		newManagerID := strings.TrimSpace(update.ManagerID)
		if newManagerID != "" {
			active, err := validation.ManagerActive(ctx, s.managerRepo, newManagerID)
			if err != nil {
				logger.Error("user service update users manager lookup failed", err, logger.Fields{
					"managerId": newManagerID,
				})
				return fmt.Errorf("check manager: %w", err)
			}
			if !active {
				logger.Error("user service update users invalid manager", domain.ErrInvalidManagerRef, logger.Fields{
					"managerId": newManagerID,
				})
				return domain.ErrInvalidManagerRef
			}

			if user.HasManager() && *user.ManagerID != newManagerID {
				if err := s.reassignManager(ctx, user, fullName, mobNum, panNum, newManagerID); err != nil {
					return err
				}
				continue
			}
		}

		updated := user
		updated.FullName = fullName
		updated.MobNum = mobNum
		updated.PanNum = panNum
		if newManagerID != "" {
			updated.ManagerID = managerRef(newManagerID)
		}
		updated.UpdatedAt = time.Now().UTC()

		if _, err := s.userRepo.Update(ctx, updated); err != nil {
			logger.Error("user service update users repository failed", err, logger.Fields{
				"userId": user.UserID,
			})
			return fmt.Errorf("update user %s: %w", user.UserID, err)
		}
	}

	logger.Info("user service update users success", logger.Fields{
		"userIds": req.UserIDs,
	})

	return nil
}

// reassignManager retires the current row and inserts a successor carrying
// the merged field values under a fresh id and fresh timestamps.
func (s *UserService) reassignManager(ctx context.Context, user domain.User, fullName, mobNum, panNum, newManagerID string) error {
	now := time.Now().UTC()
	replacement := domain.User{
		UserID:    generateUserID(),
		FullName:  fullName,
		MobNum:    mobNum,
		PanNum:    panNum,
		ManagerID: managerRef(newManagerID),
		CreatedAt: now,
		UpdatedAt: now,
		IsActive:  true,
	}

	created, err := s.userRepo.Reassign(ctx, user.UserID, replacement)
	if err != nil {
		logger.Error("user service reassign manager failed", err, logger.Fields{
			"userId":    user.UserID,
			"managerId": newManagerID,
		})
		return fmt.Errorf("reassign user %s: %w", user.UserID, err)
	}

	logger.Info("user service reassign manager success", logger.Fields{
		"retiredUserId": user.UserID,
		"newUserId":     created.UserID,
		"managerId":     newManagerID,
	})

	return nil
}

func generateUserID() string {
	return uuid.NewString()
}

func managerRef(managerID string) *string {
	if managerID == "" {
		return nil
	}

	return &managerID
}
