package services

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

// ReportingSvcFacade defines the dashboard/chart-data reads.
type ReportingSvcFacade interface {
	GetDashboard(ctx context.Context) (*domain.DashboardSummary, error)
	GetMonthlyTotals(ctx context.Context, months int) ([]domain.MonthlyTotal, error)
}
