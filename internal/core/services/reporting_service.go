package services

import (
	"context"
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
)

const defaultMonthlyWindow = 12

// reportingService serves dashboard and chart-data reads.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboard(ctx context.Context) (*domain.DashboardSummary, error) {
	return s.reportingRepo.GetDashboardSummary(ctx, time.Now().UTC())
}

func (s *reportingService) GetMonthlyTotals(ctx context.Context, months int) ([]domain.MonthlyTotal, error) {
	if months <= 0 || months > 36 {
		months = defaultMonthlyWindow
	}
	return s.reportingRepo.GetMonthlyTotals(ctx, months)
}
