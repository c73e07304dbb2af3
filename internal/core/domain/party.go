package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Party is a buyer or seller a note can be written between.
type Party struct {
	PartyID       string `json:"partyID"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	TaxID         string `json:"taxID,omitempty"`
	Notes         string `json:"notes,omitempty"`
	AuditFields

	// Computed on read, never stored.
	OutstandingBalance  decimal.Decimal `json:"outstandingBalance"`
	LastTransactionDate *time.Time      `json:"lastTransactionDate,omitempty"`
	InvoiceCount        int             `json:"invoiceCount"`
}
