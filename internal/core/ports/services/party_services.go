package services

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/dto"
)

// PartySvcFacade defines the party business operations.
type PartySvcFacade interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)
	GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
	ListParties(ctx context.Context, limit int, offset int) ([]domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error)
	// DeleteParty refuses with apperrors.ErrConflict while any invoice
	// references the party as seller or buyer.
	DeleteParty(ctx context.Context, partyID string) error
	// CountInvoices backs the has-invoices delete-guard probe.
	CountInvoices(ctx context.Context, partyID string) (int, error)
}
