package repositories

import (
	"context"
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

// ReportingRepository defines the read-only aggregate queries behind the
// dashboard and chart-data endpoints.
type ReportingRepository interface {
	// GetDashboardSummary aggregates outstanding totals and status counts.
	// Overdue is derived against asOf, not stored.
	GetDashboardSummary(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error)
	// GetMonthlyTotals returns per-month invoice volume for the last
	// `months` calendar months, oldest first.
	GetMonthlyTotals(ctx context.Context, months int) ([]domain.MonthlyTotal, error)
}
