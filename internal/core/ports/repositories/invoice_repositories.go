package repositories

import (
	"context"
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

// InvoiceListFilter narrows invoice listings. Zero values mean "no filter".
type InvoiceListFilter struct {
	Status      domain.InvoiceStatus // stored status filter
	OverdueOnly bool                 // pending with due_date before AsOf
	PartyID     string               // matches seller or buyer
	From        *time.Time           // invoice_date >= From
	To          *time.Time           // invoice_date <= To
	AsOf        time.Time            // reference date for OverdueOnly
}

// InvoiceRepository defines persistence operations for invoices and their
// line items. Items are owned exclusively by their invoice.
type InvoiceRepository interface {
	// SaveInvoice inserts the invoice and its items in one transaction and
	// assigns the next invoice number (INV-<year>-<seq>) inside that
	// transaction. It returns the assigned number.
	SaveInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) (string, error)
	// FindInvoiceByID returns the invoice with party names joined and items
	// loaded. Missing invoices yield apperrors.ErrNotFound.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	FindItemsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceItem, error)
	// UpdateInvoice rewrites the invoice row; when items is non-nil the line
	// items are replaced in the same transaction.
	UpdateInvoice(ctx context.Context, invoice domain.Invoice, items []domain.InvoiceItem) error
	UpdateInvoiceRemarks(ctx context.Context, invoiceID string, remarks string, updatedBy string, updatedAt time.Time) error
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, paymentDate *time.Time, updatedBy string, updatedAt time.Time) error
	// DeleteInvoice removes the invoice with its items, related transactions
	// and related activities in one transaction. Partial deletion is not an
	// acceptable outcome: any step failure rolls the whole operation back.
	DeleteInvoice(ctx context.Context, invoiceID string) error
	// ListInvoices returns a cursor-paginated page ordered by
	// (invoice_date DESC, created_at DESC) with party names joined.
	ListInvoices(ctx context.Context, filter InvoiceListFilter, limit int, nextToken *string) ([]domain.Invoice, *string, error)
	// FindInvoicesByParty returns all invoices where the party is seller or
	// buyer, newest first.
	FindInvoicesByParty(ctx context.Context, partyID string) ([]domain.Invoice, error)
}
