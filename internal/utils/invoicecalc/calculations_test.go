package invoicecalc

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

func item(qty, rate string) domain.InvoiceItem {
	return domain.InvoiceItem{
		Quantity: decimal.RequireFromString(qty),
		Rate:     decimal.RequireFromString(rate),
	}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.InvoiceItem
		want  string
	}{
		{"empty", nil, "0.00"},
		{"single item", []domain.InvoiceItem{item("100", "100")}, "10000.00"},
		{"fractional cents round once at the end", []domain.InvoiceItem{
			item("3", "33.335"),
			item("1", "150.005"),
		}, "250.01"},
		{"order independent", []domain.InvoiceItem{
			item("1", "150.005"),
			item("3", "33.335"),
		}, "250.01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Subtotal(tt.items).StringFixed(2))
		})
	}
}

func TestBrokerage(t *testing.T) {
	tests := []struct {
		name              string
		subtotal          string
		brokerageRate     string
		exchangeRate      string
		receivedBrokerage string
		wantBrokerage     string
		wantInINR         string
		wantBalance       string
	}{
		{
			name:     "home currency two percent",
			subtotal: "10000", brokerageRate: "2", exchangeRate: "1", receivedBrokerage: "150",
			wantBrokerage: "200.00", wantInINR: "200.00", wantBalance: "50.00",
		},
		{
			name:     "foreign currency converts before balance",
			subtotal: "1000", brokerageRate: "2.5", exchangeRate: "83.25", receivedBrokerage: "0",
			wantBrokerage: "25.00", wantInINR: "2081.25", wantBalance: "2081.25",
		},
		{
			name:     "overpaid brokerage goes negative",
			subtotal: "1000", brokerageRate: "1", exchangeRate: "1", receivedBrokerage: "15",
			wantBrokerage: "10.00", wantInINR: "10.00", wantBalance: "-5.00",
		},
		{
			name:     "near zero balance snaps to zero",
			subtotal: "1000", brokerageRate: "1", exchangeRate: "1", receivedBrokerage: "9.995",
			wantBrokerage: "10.00", wantInINR: "10.00", wantBalance: "0.00",
		},
		{
			name:     "zero rate yields zero everywhere",
			subtotal: "10000", brokerageRate: "0", exchangeRate: "1", receivedBrokerage: "0",
			wantBrokerage: "0.00", wantInINR: "0.00", wantBalance: "0.00",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			brokerage, inINR, balance := Brokerage(
				decimal.RequireFromString(tt.subtotal),
				decimal.RequireFromString(tt.brokerageRate),
				decimal.RequireFromString(tt.exchangeRate),
				decimal.RequireFromString(tt.receivedBrokerage),
			)
			assert.Equal(t, tt.wantBrokerage, brokerage.StringFixed(2))
			assert.Equal(t, tt.wantInINR, inINR.StringFixed(2))
			assert.Equal(t, tt.wantBalance, balance.StringFixed(2))
		})
	}
}

func TestDueDate(t *testing.T) {
	invoiceDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC), DueDate(invoiceDate, 30))
	assert.Equal(t, invoiceDate, DueDate(invoiceDate, 0))
	// Month-end rollover follows the calendar.
	assert.Equal(t, time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		DueDate(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), 3))
}

func TestPinExchangeRate(t *testing.T) {
	submitted := decimal.RequireFromString("83.25")

	assert.True(t, PinExchangeRate("INR", submitted).Equal(decimal.NewFromInt(1)),
		"home currency pins to 1.00")
	assert.True(t, PinExchangeRate("USD", submitted).Equal(submitted),
		"foreign currency keeps the submitted rate")
}

func TestRecompute(t *testing.T) {
	inv := &domain.Invoice{
		CurrencyCode:      "INR",
		ExchangeRate:      decimal.RequireFromString("85.20"),
		BrokerageRate:     decimal.NewFromInt(2),
		ReceivedBrokerage: decimal.NewFromInt(150),
		Items: []domain.InvoiceItem{
			item("100", "100"),
		},
	}

	Recompute(inv)

	assert.Equal(t, "1.00", inv.ExchangeRate.StringFixed(2), "exchange rate pinned")
	assert.Equal(t, "10000.00", inv.Subtotal.StringFixed(2))
	assert.Equal(t, "200.00", inv.Brokerage.StringFixed(2))
	assert.Equal(t, "200.00", inv.BrokerageInINR.StringFixed(2))
	assert.Equal(t, "50.00", inv.BalanceBrokerage.StringFixed(2))

	// Recompute is idempotent: running it again changes nothing.
	Recompute(inv)
	assert.Equal(t, "50.00", inv.BalanceBrokerage.StringFixed(2))
}
