package services

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

// ActivitySvcFacade defines the audit trail operations. Record never fails
// the calling operation: trail write errors are logged and swallowed.
type ActivitySvcFacade interface {
	Record(ctx context.Context, activityType domain.ActivityType, title string, description string, invoiceID *string, userID *string)
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
