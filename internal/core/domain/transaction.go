package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger event.
type TransactionType string

const (
	TxnPayment    TransactionType = "payment"
	TxnReceipt    TransactionType = "receipt"
	TxnAdjustment TransactionType = "adjustment"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TxnPayment, TxnReceipt, TxnAdjustment:
		return true
	}
	return false
}

// Transaction represents a payment/ledger event against a party, optionally
// tied to a specific invoice.
type Transaction struct {
	TransactionID string          `json:"transactionID"`
	PartyID       string          `json:"partyID"`
	InvoiceID     *string         `json:"invoiceID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Type          TransactionType `json:"type"`
	Notes         string          `json:"notes"`
	AuditFields
}
