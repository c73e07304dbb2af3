package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
	"github.com/bussnote/bussnote_backend/internal/middleware"
)

// ErrPartyHasInvoices blocks deletion of a referenced party.
var ErrPartyHasInvoices = fmt.Errorf("%w: party is referenced by invoices", apperrors.ErrConflict)

// partyService implements the party business operations.
type partyService struct {
	partyRepo   portsrepo.PartyRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo, activitySvc: activitySvc}
}

var _ portssvc.PartySvcFacade = (*partyService)(nil)

func (s *partyService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	now := time.Now().UTC()

	party := domain.Party{
		PartyID:       uuid.NewString(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		TaxID:         req.TaxID,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		return nil, fmt.Errorf("failed to create party: %w", err)
	}

	s.activitySvc.Record(ctx, domain.ActivityPartyAdded,
		fmt.Sprintf("Party %s added", party.Name), "", nil, &creatorUserID)

	return &party, nil
}

// GetPartyByID returns the party enriched with its read-time derived fields
// (outstanding balance, last transaction date, invoice count).
func (s *partyService) GetPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	enrichment, err := s.partyRepo.GetPartyEnrichment(ctx, partyID)
	if err != nil {
		// Enrichment is derived display data; log and serve the party bare.
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to enrich party",
			slog.String("party_id", partyID), slog.String("error", err.Error()))
		return party, nil
	}
	party.OutstandingBalance = enrichment.OutstandingBalance
	party.LastTransactionDate = enrichment.LastTransactionDate
	party.InvoiceCount = enrichment.InvoiceCount
	return party, nil
}

func (s *partyService) ListParties(ctx context.Context, limit int, offset int) ([]domain.Party, error) {
	return s.partyRepo.FindParties(ctx, limit, offset)
}

func (s *partyService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, updaterUserID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		party.Name = *req.Name
	}
	if req.ContactPerson != nil {
		party.ContactPerson = *req.ContactPerson
	}
	if req.Phone != nil {
		party.Phone = *req.Phone
	}
	if req.Email != nil {
		party.Email = *req.Email
	}
	if req.Address != nil {
		party.Address = *req.Address
	}
	if req.TaxID != nil {
		party.TaxID = *req.TaxID
	}
	if req.Notes != nil {
		party.Notes = *req.Notes
	}

	party.LastUpdatedAt = time.Now().UTC()
	party.LastUpdatedBy = updaterUserID

	if err := s.partyRepo.UpdateParty(ctx, *party); err != nil {
		return nil, fmt.Errorf("failed to update party %s: %w", partyID, err)
	}
	return party, nil
}

// DeleteParty removes a party only while nothing references it: any invoice
// naming the party as seller or buyer blocks the deletion.
func (s *partyService) DeleteParty(ctx context.Context, partyID string) error {
	count, err := s.partyRepo.CountInvoicesForParty(ctx, partyID)
	if err != nil {
		return fmt.Errorf("failed to check invoices for party %s: %w", partyID, err)
	}
	if count > 0 {
		return ErrPartyHasInvoices
	}
	return s.partyRepo.DeleteParty(ctx, partyID)
}

func (s *partyService) CountInvoices(ctx context.Context, partyID string) (int, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return 0, err
	}
	return s.partyRepo.CountInvoicesForParty(ctx, partyID)
}
