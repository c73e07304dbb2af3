package services

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/dto"
)

// InvoiceSvcFacade defines the invoice business operations. All derived
// money fields are recomputed server-side on every write.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, *string, error)
	ListInvoicesByParty(ctx context.Context, partyID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoiceID string, req dto.UpdateInvoiceRequest, updaterUserID string) (*domain.Invoice, error)
	UpdateNotes(ctx context.Context, invoiceID string, remarks string, updaterUserID string) (*domain.Invoice, error)
	UpdateStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, updaterUserID string) (*domain.Invoice, error)
	DeleteInvoice(ctx context.Context, invoiceID string, deleterUserID string) error
}
