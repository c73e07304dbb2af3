package repositories

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

// ActivityRepository defines persistence operations for the append-only
// audit trail. Activities are never updated.
type ActivityRepository interface {
	SaveActivity(ctx context.Context, activity domain.Activity) error
	ListActivities(ctx context.Context, limit int) ([]domain.Activity, error)
	// CountActivitiesByUser counts trail entries attributed to a user; a
	// non-zero count blocks user deletion.
	CountActivitiesByUser(ctx context.Context, userID string) (int, error)
}
