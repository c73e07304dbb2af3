package repositories

import (
	"context"
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PartyEnrichment carries the read-time derived fields of a party.
type PartyEnrichment struct {
	OutstandingBalance  decimal.Decimal
	LastTransactionDate *time.Time
	InvoiceCount        int
}

// PartyRepository defines persistence operations for parties.
type PartyRepository interface {
	SaveParty(ctx context.Context, party domain.Party) error
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	FindParties(ctx context.Context, limit int, offset int) ([]domain.Party, error)
	UpdateParty(ctx context.Context, party domain.Party) error
	// DeleteParty removes the party row. Callers must run the invoice
	// reference guard first; the DB's FK constraints are the final authority.
	DeleteParty(ctx context.Context, partyID string) error
	// CountInvoicesForParty counts invoices referencing the party as seller
	// or buyer. Non-zero blocks deletion.
	CountInvoicesForParty(ctx context.Context, partyID string) (int, error)
	// GetPartyEnrichment computes the outstanding balance (pending invoices
	// where the party is the seller), last transaction date and invoice
	// count for a party.
	GetPartyEnrichment(ctx context.Context, partyID string) (*PartyEnrichment, error)
}
