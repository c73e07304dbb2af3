package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	"github.com/bussnote/bussnote_backend/internal/models"
	"github.com/bussnote/bussnote_backend/internal/utils/mapping"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for party data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepository {
	return &PgxPartyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.PartyRepository = (*PgxPartyRepository)(nil)

// SaveParty inserts a new party.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	modelParty := mapping.ToModelParty(party)

	query := `
		INSERT INTO parties (party_id, name, contact_person, phone, email, address, tax_id, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelParty.PartyID,
		modelParty.Name,
		modelParty.ContactPerson,
		modelParty.Phone,
		modelParty.Email,
		modelParty.Address,
		modelParty.TaxID,
		modelParty.Notes,
		modelParty.CreatedAt,
		modelParty.CreatedBy,
		modelParty.LastUpdatedAt,
		modelParty.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save party %s: %w", modelParty.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a party by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `
		SELECT party_id, name, contact_person, phone, email, address, tax_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		WHERE party_id = $1;
	`
	var modelParty models.Party
	err := r.Pool.QueryRow(ctx, query, partyID).Scan(
		&modelParty.PartyID,
		&modelParty.Name,
		&modelParty.ContactPerson,
		&modelParty.Phone,
		&modelParty.Email,
		&modelParty.Address,
		&modelParty.TaxID,
		&modelParty.Notes,
		&modelParty.CreatedAt,
		&modelParty.CreatedBy,
		&modelParty.LastUpdatedAt,
		&modelParty.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("party not found")
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}

	domainParty := mapping.ToDomainParty(modelParty)
	return &domainParty, nil
}

// FindParties retrieves parties ordered by name.
func (r *PgxPartyRepository) FindParties(ctx context.Context, limit int, offset int) ([]domain.Party, error) {
	query := `
		SELECT party_id, name, contact_person, phone, email, address, tax_id, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM parties
		ORDER BY name ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	modelParties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Party, error) {
		var party models.Party
		err := row.Scan(
			&party.PartyID,
			&party.Name,
			&party.ContactPerson,
			&party.Phone,
			&party.Email,
			&party.Address,
			&party.TaxID,
			&party.Notes,
			&party.CreatedAt,
			&party.CreatedBy,
			&party.LastUpdatedAt,
			&party.LastUpdatedBy,
		)
		return party, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan parties: %w", err)
	}

	return mapping.ToDomainPartySlice(modelParties), nil
}

// UpdateParty rewrites the party row.
func (r *PgxPartyRepository) UpdateParty(ctx context.Context, party domain.Party) error {
	modelParty := mapping.ToModelParty(party)

	query := `
		UPDATE parties
		SET name = $2, contact_person = $3, phone = $4, email = $5, address = $6, tax_id = $7, notes = $8, last_updated_at = $9, last_updated_by = $10
		WHERE party_id = $1;
	`

	cmdTag, err := r.Pool.Exec(ctx, query,
		modelParty.PartyID,
		modelParty.Name,
		modelParty.ContactPerson,
		modelParty.Phone,
		modelParty.Email,
		modelParty.Address,
		modelParty.TaxID,
		modelParty.Notes,
		modelParty.LastUpdatedAt,
		modelParty.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update party %s: %w", modelParty.PartyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteParty removes the party row.
func (r *PgxPartyRepository) DeleteParty(ctx context.Context, partyID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM parties WHERE party_id = $1;`, partyID)
	if err != nil {
		return fmt.Errorf("failed to delete party %s: %w", partyID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// CountInvoicesForParty counts invoices naming the party as seller or buyer.
func (r *PgxPartyRepository) CountInvoicesForParty(ctx context.Context, partyID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM invoices
		WHERE seller_party_id = $1 OR buyer_party_id = $1;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, partyID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count invoices for party %s: %w", partyID, err)
	}
	return count, nil
}

// GetPartyEnrichment computes the read-time derived fields for a party:
// outstanding balance over pending invoices where the party is the seller,
// the most recent transaction date, and the total invoice count.
func (r *PgxPartyRepository) GetPartyEnrichment(ctx context.Context, partyID string) (*portsrepo.PartyEnrichment, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(balance_brokerage) FROM invoices WHERE seller_party_id = $1 AND status = 'pending'), 0),
			(SELECT MAX(date) FROM transactions WHERE party_id = $1),
			(SELECT COUNT(*) FROM invoices WHERE seller_party_id = $1 OR buyer_party_id = $1);
	`
	var (
		outstanding decimal.Decimal
		lastTxnDate *time.Time
		count       int
	)
	if err := r.Pool.QueryRow(ctx, query, partyID).Scan(&outstanding, &lastTxnDate, &count); err != nil {
		return nil, fmt.Errorf("failed to enrich party %s: %w", partyID, err)
	}

	return &portsrepo.PartyEnrichment{
		OutstandingBalance:  outstanding,
		LastTransactionDate: lastTxnDate,
		InvoiceCount:        count,
	}, nil
}
