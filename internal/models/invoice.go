package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus mirrors domain.InvoiceStatus at the storage layer.
type InvoiceStatus string

// Invoice is the DB row shape for an invoice. Money columns are NUMERIC(20,2);
// derived fields are persisted already rounded to two decimals.
type Invoice struct {
	InvoiceID         string          `db:"invoice_id"`
	InvoiceNumber     string          `db:"invoice_number"`
	SellerPartyID     string          `db:"seller_party_id"`
	BuyerPartyID      string          `db:"buyer_party_id"`
	InvoiceDate       time.Time       `db:"invoice_date"`
	DueDays           int             `db:"due_days"`
	DueDate           time.Time       `db:"due_date"`
	Terms             string          `db:"terms"`
	CurrencyCode      string          `db:"currency_code"`
	Status            InvoiceStatus   `db:"status"`
	PaymentDate       sql.NullTime    `db:"payment_date"`
	Remarks           string          `db:"remarks"`
	BrokerageRate     decimal.Decimal `db:"brokerage_rate"`
	ExchangeRate      decimal.Decimal `db:"exchange_rate"`
	ReceivedBrokerage decimal.Decimal `db:"received_brokerage"`
	Subtotal          decimal.Decimal `db:"subtotal"`
	Brokerage         decimal.Decimal `db:"brokerage"`
	BrokerageInINR    decimal.Decimal `db:"brokerage_in_inr"`
	BalanceBrokerage  decimal.Decimal `db:"balance_brokerage"`
	AuditFields

	// Joined from parties on read.
	SellerName string `db:"seller_name"`
	BuyerName  string `db:"buyer_name"`
}

// InvoiceItem is the DB row shape for an invoice line item.
type InvoiceItem struct {
	ItemID      string          `db:"item_id"`
	InvoiceID   string          `db:"invoice_id"`
	Description string          `db:"description"`
	Quantity    decimal.Decimal `db:"quantity"`
	Rate        decimal.Decimal `db:"rate"`
}
