package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the stored lifecycle state of an invoice.
// It is the single authoritative representation; the legacy isClosed flag is
// derived from it and never stored separately.
type InvoiceStatus string

const (
	StatusPending   InvoiceStatus = "pending"
	StatusPaid      InvoiceStatus = "paid"
	StatusCancelled InvoiceStatus = "cancelled"
	StatusClosed    InvoiceStatus = "closed"
)

// StatusOverdue is a presentation-only state: a pending invoice whose due
// date has passed. It is never written to the store.
const StatusOverdue InvoiceStatus = "overdue"

// IsValid reports whether s is a storable status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusCancelled, StatusClosed:
		return true
	}
	return false
}

// HomeCurrency is the currency brokerage settles in. Invoices in the home
// currency carry a pinned exchange rate of 1.00.
const HomeCurrency = "INR"

// SupportedCurrencies is the fixed set of currency codes an invoice may use.
var SupportedCurrencies = []string{"INR", "USD", "EUR", "GBP", "AED", "CAD"}

// IsSupportedCurrency reports whether code is one of the recognized currency codes.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c == code {
			return true
		}
	}
	return false
}

// Invoice represents a sales note between a seller party and a buyer party,
// carrying line items and brokerage terms.
type Invoice struct {
	InvoiceID     string        `json:"invoiceID"`
	InvoiceNumber string        `json:"invoiceNumber"` // e.g. INV-2026-0042
	SellerPartyID string        `json:"sellerPartyID"`
	BuyerPartyID  string        `json:"buyerPartyID"` // must differ from seller
	InvoiceDate   time.Time     `json:"invoiceDate"`
	DueDays       int           `json:"dueDays"`
	DueDate       time.Time     `json:"dueDate"` // derived from invoiceDate+dueDays, independently editable
	Terms         string        `json:"terms"`   // display label, not interpreted
	CurrencyCode  string        `json:"currencyCode"`
	Status        InvoiceStatus `json:"status"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty"`
	Remarks       string        `json:"remarks"`

	// Rate inputs.
	BrokerageRate     decimal.Decimal `json:"brokerageRate"` // percentage, >= 0
	ExchangeRate      decimal.Decimal `json:"exchangeRate"`  // > 0; 1.00 when currency is INR
	ReceivedBrokerage decimal.Decimal `json:"receivedBrokerage"`

	// Derived money fields, recomputed from inputs on every write.
	Subtotal         decimal.Decimal `json:"subtotal"`
	Brokerage        decimal.Decimal `json:"brokerage"`
	BrokerageInINR   decimal.Decimal `json:"brokerageInINR"`
	BalanceBrokerage decimal.Decimal `json:"balanceBrokerage"`

	Items []InvoiceItem `json:"items"`

	// Joined on read, not stored on the invoice row.
	SellerName string `json:"sellerName,omitempty"`
	BuyerName  string `json:"buyerName,omitempty"`

	AuditFields
}

// InvoiceItem is a single line of an invoice, owned exclusively by it.
type InvoiceItem struct {
	ItemID      string          `json:"itemID"`
	InvoiceID   string          `json:"invoiceID"`
	Description string          `json:"description"` // required, non-empty
	Quantity    decimal.Decimal `json:"quantity"`    // > 0, up to 2 decimals
	Rate        decimal.Decimal `json:"rate"`        // >= 0, up to 2 decimals
}

// Amount is the line total, quantity x rate. Not stored redundantly.
func (i InvoiceItem) Amount() decimal.Decimal {
	return i.Quantity.Mul(i.Rate)
}

// DisplayStatus derives the presentation state: a pending invoice past its
// due date displays as overdue; every other status displays verbatim.
func (inv *Invoice) DisplayStatus(now time.Time) InvoiceStatus {
	if inv.Status == StatusPending && inv.DueDate.Before(truncateToDay(now)) {
		return StatusOverdue
	}
	return inv.Status
}

// IsClosed derives the legacy closed flag: anything that left pending.
func (inv *Invoice) IsClosed() bool {
	return inv.Status != StatusPending
}

// IsOutstanding reports whether the invoice counts toward outstanding
// aggregates. Only pending invoices (including overdue ones) do.
func (inv *Invoice) IsOutstanding() bool {
	return inv.Status == StatusPending
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
