package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB row shape for a payment/ledger event.
type Transaction struct {
	TransactionID string          `db:"transaction_id"`
	PartyID       string          `db:"party_id"`
	InvoiceID     sql.NullString  `db:"invoice_id"`
	Amount        decimal.Decimal `db:"amount"`
	Date          time.Time       `db:"date"`
	Type          string          `db:"type"`
	Notes         string          `db:"notes"`
	AuditFields
}
