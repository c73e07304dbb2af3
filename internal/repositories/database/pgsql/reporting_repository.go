package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate reads.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetDashboardSummary aggregates outstanding totals and status counts in a
// single query. Overdue is derived against asOf, never read from a column.
func (r *PgxReportingRepository) GetDashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error) {
	query := `
		SELECT
			COALESCE(SUM(balance_brokerage) FILTER (WHERE status = 'pending'), 0),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'pending' AND due_date < $1),
			COUNT(*) FILTER (WHERE status = 'paid'),
			COUNT(*) FILTER (WHERE status = 'cancelled'),
			COUNT(*) FILTER (WHERE status = 'closed'),
			COALESCE(SUM(subtotal) FILTER (WHERE status != 'cancelled'), 0),
			(SELECT COUNT(*) FROM parties)
		FROM invoices;
	`

	var summary domain.DashboardSummary
	err := r.Pool.QueryRow(ctx, query, asOf).Scan(
		&summary.OutstandingTotal,
		&summary.PendingCount,
		&summary.OverdueCount,
		&summary.PaidCount,
		&summary.CancelledCount,
		&summary.ClosedCount,
		&summary.InvoiceTotal,
		&summary.PartyCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query dashboard summary: %w", err)
	}
	return &summary, nil
}

// GetMonthlyTotals returns per-month invoice volume for the last `months`
// calendar months, oldest first. Cancelled invoices are excluded. Months
// with no invoices are absent from the result.
func (r *PgxReportingRepository) GetMonthlyTotals(ctx context.Context, months int) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT
			date_trunc('month', invoice_date) AS month,
			COALESCE(SUM(subtotal), 0),
			COALESCE(SUM(brokerage), 0),
			COUNT(*)
		FROM invoices
		WHERE status != 'cancelled'
			AND invoice_date >= date_trunc('month', now()) - make_interval(months => $1 - 1)
		GROUP BY month
		ORDER BY month ASC;
	`
	rows, err := r.Pool.Query(ctx, query, months)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	totals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonthlyTotal, error) {
		var t domain.MonthlyTotal
		err := row.Scan(&t.Month, &t.Subtotal, &t.Brokerage, &t.Count)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan monthly totals: %w", err)
	}
	return totals, nil
}
