package services

import (
	"context"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/dto"
)

// TransactionSvcFacade defines the ledger event operations.
type TransactionSvcFacade interface {
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
	ListTransactionsByParty(ctx context.Context, partyID string, limit int, offset int) ([]domain.Transaction, error)
}
