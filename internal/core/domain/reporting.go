package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSummary aggregates the headline numbers for the dashboard.
type DashboardSummary struct {
	OutstandingTotal decimal.Decimal `json:"outstandingTotal"` // balance brokerage over pending invoices
	PendingCount     int             `json:"pendingCount"`
	OverdueCount     int             `json:"overdueCount"`
	PaidCount        int             `json:"paidCount"`
	CancelledCount   int             `json:"cancelledCount"`
	ClosedCount      int             `json:"closedCount"`
	InvoiceTotal     decimal.Decimal `json:"invoiceTotal"` // subtotal over all non-cancelled invoices
	PartyCount       int             `json:"partyCount"`
}

// MonthlyTotal is one month of invoice volume, used as chart data.
type MonthlyTotal struct {
	Month     time.Time       `json:"month"` // first day of the month
	Subtotal  decimal.Decimal `json:"subtotal"`
	Brokerage decimal.Decimal `json:"brokerage"`
	Count     int             `json:"count"`
}
