package dto

import (
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/utils/money"
)

// DashboardResponse carries the headline dashboard numbers.
type DashboardResponse struct {
	OutstandingTotal string `json:"outstandingTotal"`
	PendingCount     int    `json:"pendingCount"`
	OverdueCount     int    `json:"overdueCount"`
	PaidCount        int    `json:"paidCount"`
	CancelledCount   int    `json:"cancelledCount"`
	ClosedCount      int    `json:"closedCount"`
	InvoiceTotal     string `json:"invoiceTotal"`
	PartyCount       int    `json:"partyCount"`
}

// MonthlyTotalResponse is one month of invoice volume (chart data).
type MonthlyTotalResponse struct {
	Month     string `json:"month"` // YYYY-MM-01
	Subtotal  string `json:"subtotal"`
	Brokerage string `json:"brokerage"`
	Count     int    `json:"count"`
}

// MonthlyReportResponse wraps the monthly series.
type MonthlyReportResponse struct {
	Months []MonthlyTotalResponse `json:"months"`
}

// ToDashboardResponse converts the domain summary to its wire shape.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		OutstandingTotal: money.Format(s.OutstandingTotal),
		PendingCount:     s.PendingCount,
		OverdueCount:     s.OverdueCount,
		PaidCount:        s.PaidCount,
		CancelledCount:   s.CancelledCount,
		ClosedCount:      s.ClosedCount,
		InvoiceTotal:     money.Format(s.InvoiceTotal),
		PartyCount:       s.PartyCount,
	}
}

// ToMonthlyReportResponse converts the monthly series to its wire shape.
func ToMonthlyReportResponse(months []domain.MonthlyTotal) MonthlyReportResponse {
	res := make([]MonthlyTotalResponse, len(months))
	for i, m := range months {
		res[i] = MonthlyTotalResponse{
			Month:     FormatDate(m.Month),
			Subtotal:  money.Format(m.Subtotal),
			Brokerage: money.Format(m.Brokerage),
			Count:     m.Count,
		}
	}
	return MonthlyReportResponse{Months: res}
}
