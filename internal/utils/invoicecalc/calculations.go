// Package invoicecalc holds the pure financial calculations for invoices:
// line-item aggregation, brokerage/exchange derivation and due-date
// derivation. Everything here is side-effect free so the same functions run
// identically in services and tests.
package invoicecalc

import (
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Subtotal sums quantity x rate over the items and rounds the total to two
// decimals. The sum is commutative, so the result is order-independent and
// idempotent for a given item list.
func Subtotal(items []domain.InvoiceItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Quantity.Mul(item.Rate))
	}
	return money.RoundHalfUp(sum)
}

// Brokerage derives the three brokerage figures from the subtotal and rate
// inputs:
//
//	brokerage       = round(subtotal * brokerageRate / 100)
//	brokerageInINR  = round(brokerage * exchangeRate)
//	balance         = floor(brokerageInINR - receivedBrokerage)
//
// Each value is rounded once after its own step; intermediate error never
// compounds beyond one rounding per field.
func Brokerage(subtotal, brokerageRate, exchangeRate, receivedBrokerage decimal.Decimal) (brokerage, brokerageInINR, balance decimal.Decimal) {
	brokerage = money.RoundHalfUp(subtotal.Mul(brokerageRate).Div(hundred))
	brokerageInINR = money.RoundHalfUp(brokerage.Mul(exchangeRate))
	balance = money.RoundDown(brokerageInINR.Sub(receivedBrokerage))
	return brokerage, brokerageInINR, balance
}

// DueDate derives the due date as invoiceDate plus dueDays calendar days.
func DueDate(invoiceDate time.Time, dueDays int) time.Time {
	return invoiceDate.AddDate(0, 0, dueDays)
}

// PinExchangeRate returns the exchange rate an invoice must carry: home
// currency invoices are pinned to 1.00 regardless of what was submitted,
// every other currency keeps the submitted rate.
func PinExchangeRate(currencyCode string, submitted decimal.Decimal) decimal.Decimal {
	if currencyCode == domain.HomeCurrency {
		return decimal.NewFromInt(1)
	}
	return submitted
}

// Recompute recalculates every derived field of the invoice from its inputs:
// the exchange-rate pin, the subtotal, and the three brokerage figures. It is
// invoked after every field mutation so derived values are never stale.
func Recompute(inv *domain.Invoice) {
	inv.ExchangeRate = PinExchangeRate(inv.CurrencyCode, inv.ExchangeRate)
	inv.Subtotal = Subtotal(inv.Items)
	inv.Brokerage, inv.BrokerageInINR, inv.BalanceBrokerage = Brokerage(
		inv.Subtotal, inv.BrokerageRate, inv.ExchangeRate, inv.ReceivedBrokerage,
	)
}
