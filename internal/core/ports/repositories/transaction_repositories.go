package repositories

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

// TransactionRepository defines persistence operations for ledger events.
type TransactionRepository interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	FindTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
	FindTransactionsByParty(ctx context.Context, partyID string, limit int, offset int) ([]domain.Transaction, error)
}
