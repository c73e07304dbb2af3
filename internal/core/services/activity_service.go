package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/middleware"
	"github.com/google/uuid"
)

// activityService records and serves the append-only audit trail.
type activityService struct {
	activityRepo portsrepo.ActivityRepository
}

// NewActivityService creates a new ActivityService.
func NewActivityService(activityRepo portsrepo.ActivityRepository) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: activityRepo}
}

var _ portssvc.ActivitySvcFacade = (*activityService)(nil)

// Record appends a trail entry. A failed trail write must not fail the
// operation that triggered it, so errors are logged and swallowed.
func (s *activityService) Record(ctx context.Context, activityType domain.ActivityType, title string, description string, invoiceID *string, userID *string) {
	activity := domain.Activity{
		ActivityID:  uuid.NewString(),
		Type:        activityType,
		Title:       title,
		Description: description,
		Timestamp:   time.Now().UTC(),
		InvoiceID:   invoiceID,
		UserID:      userID,
	}

	if err := s.activityRepo.SaveActivity(ctx, activity); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to record activity",
			slog.String("type", string(activityType)),
			slog.String("error", err.Error()),
		)
	}
}

func (s *activityService) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	return s.activityRepo.ListActivities(ctx, limit)
}

func (s *activityService) CountByUser(ctx context.Context, userID string) (int, error) {
	return s.activityRepo.CountActivitiesByUser(ctx, userID)
}
