package services

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/dto"
)

// UserSvcFacade defines the user management operations.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, updaterUserID string) (*domain.User, error)
	// DeleteUser refuses with apperrors.ErrConflict while audit trail
	// entries reference the user.
	DeleteUser(ctx context.Context, userID string, deleterUserID string) error
}
