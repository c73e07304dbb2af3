package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
)

// ErrUserHasRecords blocks deletion of a user the audit trail references.
var ErrUserHasRecords = fmt.Errorf("%w: user is referenced by activity records", apperrors.ErrConflict)

const defaultUserRole = "operator"

// userService implements the user management operations.
type userService struct {
	userRepo    portsrepo.UserRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo, activitySvc: activitySvc}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	now := time.Now().UTC()

	role := req.Role
	if role == "" {
		role = defaultUserRole
	}

	user := domain.User{
		UserID: uuid.NewString(),
		Name:   req.Name,
		Email:  req.Email,
		Role:   role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx, limit, offset)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = updaterUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

// DeleteUser soft-deletes a user, refusing while audit trail entries still
// reference them.
func (s *userService) DeleteUser(ctx context.Context, userID string, deleterUserID string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	count, err := s.activitySvc.CountByUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check activity records for user %s: %w", userID, err)
	}
	if count > 0 {
		return ErrUserHasRecords
	}

	return s.userRepo.MarkUserDeleted(ctx, userID, time.Now().UTC(), deleterUserID)
}
