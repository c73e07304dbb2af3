package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatusIsValid(t *testing.T) {
	tests := []struct {
		status InvoiceStatus
		want   bool
	}{
		{StatusPending, true},
		{StatusPaid, true},
		{StatusCancelled, true},
		{StatusClosed, true},
		{StatusOverdue, false}, // presentation-only, never stored
		{InvoiceStatus("archived"), false},
		{InvoiceStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsValid())
		})
	}
}

func TestDisplayStatus(t *testing.T) {
	dueDate := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status InvoiceStatus
		now    time.Time
		want   InvoiceStatus
	}{
		{"pending before due date", StatusPending, dueDate.AddDate(0, 0, -1), StatusPending},
		{"pending on due date stays pending", StatusPending, dueDate, StatusPending},
		{"pending later the same day stays pending", StatusPending, dueDate.Add(23 * time.Hour), StatusPending},
		{"pending after due date shows overdue", StatusPending, dueDate.AddDate(0, 0, 1), StatusOverdue},
		{"paid never shows overdue", StatusPaid, dueDate.AddDate(0, 0, 30), StatusPaid},
		{"cancelled never shows overdue", StatusCancelled, dueDate.AddDate(0, 0, 30), StatusCancelled},
		{"closed never shows overdue", StatusClosed, dueDate.AddDate(0, 0, 30), StatusClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Invoice{Status: tt.status, DueDate: dueDate}
			assert.Equal(t, tt.want, inv.DisplayStatus(tt.now))
		})
	}
}

func TestIsClosedAndOutstanding(t *testing.T) {
	tests := []struct {
		status          InvoiceStatus
		wantClosed      bool
		wantOutstanding bool
	}{
		{StatusPending, false, true},
		{StatusPaid, true, false},
		{StatusCancelled, true, false},
		{StatusClosed, true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			inv := &Invoice{Status: tt.status}
			assert.Equal(t, tt.wantClosed, inv.IsClosed())
			assert.Equal(t, tt.wantOutstanding, inv.IsOutstanding())
		})
	}
}

func TestIsSupportedCurrency(t *testing.T) {
	for _, code := range SupportedCurrencies {
		assert.True(t, IsSupportedCurrency(code), code)
	}
	assert.False(t, IsSupportedCurrency("JPY"))
	assert.False(t, IsSupportedCurrency("inr"), "codes are case sensitive")
	assert.False(t, IsSupportedCurrency(""))
}

func TestInvoiceItemAmount(t *testing.T) {
	item := InvoiceItem{
		Quantity: decimal.RequireFromString("2.5"),
		Rate:     decimal.RequireFromString("40.10"),
	}
	assert.Equal(t, "100.25", item.Amount().StringFixed(2))
}
