package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	"github.com/bussnote/bussnote_backend/internal/models"
	"github.com/bussnote/bussnote_backend/internal/utils/mapping"
)

type PgxActivityRepository struct {
	BaseRepository
}

// newPgxActivityRepository creates a new repository for the audit trail.
func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepository {
	return &PgxActivityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ActivityRepository = (*PgxActivityRepository)(nil)

// SaveActivity appends an audit trail entry.
func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity domain.Activity) error {
	modelAct := mapping.ToModelActivity(activity)

	query := `
		INSERT INTO activities (activity_id, type, title, description, timestamp, invoice_id, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAct.ActivityID,
		modelAct.Type,
		modelAct.Title,
		modelAct.Description,
		modelAct.Timestamp,
		modelAct.InvoiceID,
		modelAct.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to save activity %s: %w", modelAct.ActivityID, err)
	}
	return nil
}

// ListActivities retrieves the most recent trail entries.
func (r *PgxActivityRepository) ListActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	query := `
		SELECT activity_id, type, title, description, timestamp, invoice_id, user_id
		FROM activities
		ORDER BY timestamp DESC
		LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	modelActs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Activity, error) {
		var act models.Activity
		err := row.Scan(
			&act.ActivityID,
			&act.Type,
			&act.Title,
			&act.Description,
			&act.Timestamp,
			&act.InvoiceID,
			&act.UserID,
		)
		return act, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan activities: %w", err)
	}

	return mapping.ToDomainActivitySlice(modelActs), nil
}

// CountActivitiesByUser counts trail entries attributed to a user.
func (r *PgxActivityRepository) CountActivitiesByUser(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM activities WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count activities for user %s: %w", userID, err)
	}
	return count, nil
}
