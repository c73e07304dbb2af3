package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	"github.com/bussnote/bussnote_backend/internal/models"
	"github.com/bussnote/bussnote_backend/internal/utils/mapping"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger events.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

func scanTransactionRow(row pgx.CollectableRow) (models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(
		&txn.TransactionID,
		&txn.PartyID,
		&txn.InvoiceID,
		&txn.Amount,
		&txn.Date,
		&txn.Type,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.CreatedBy,
		&txn.LastUpdatedAt,
		&txn.LastUpdatedBy,
	)
	return txn, err
}

// SaveTransaction inserts a new ledger event.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, party_id, invoice_id, amount, date, type, notes, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.PartyID,
		modelTxn.InvoiceID,
		modelTxn.Amount,
		modelTxn.Date,
		modelTxn.Type,
		modelTxn.Notes,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

// FindTransactions retrieves ledger events, newest first.
func (r *PgxTransactionRepository) FindTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, party_id, invoice_id, amount, date, type, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		ORDER BY date DESC, created_at DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	modelTxns, err := pgx.CollectRows(rows, scanTransactionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// FindTransactionsByParty retrieves a party's ledger events, newest first.
func (r *PgxTransactionRepository) FindTransactionsByParty(ctx context.Context, partyID string, limit int, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, party_id, invoice_id, amount, date, type, notes, created_at, created_by, last_updated_at, last_updated_by
		FROM transactions
		WHERE party_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, partyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for party %s: %w", partyID, err)
	}
	modelTxns, err := pgx.CollectRows(rows, scanTransactionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions for party %s: %w", partyID, err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}
