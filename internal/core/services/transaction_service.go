package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bussnote/bussnote_backend/internal/apperrors"
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	portsrepo "github.com/bussnote/bussnote_backend/internal/core/ports/repositories"
	portssvc "github.com/bussnote/bussnote_backend/internal/core/ports/services"
	"github.com/bussnote/bussnote_backend/internal/dto"
)

// transactionService implements the ledger event operations.
type transactionService struct {
	txnRepo     portsrepo.TransactionRepository
	partyRepo   portsrepo.PartyRepository
	invoiceRepo portsrepo.InvoiceRepository
	activitySvc portssvc.ActivitySvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepository, partyRepo portsrepo.PartyRepository, invoiceRepo portsrepo.InvoiceRepository, activitySvc portssvc.ActivitySvcFacade) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:     txnRepo,
		partyRepo:   partyRepo,
		invoiceRepo: invoiceRepo,
		activitySvc: activitySvc,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction records a payment/ledger event against a party. A linked
// invoice does not change its own status here: the invoice lifecycle stays
// user-driven.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	txnType := domain.TransactionType(req.Type)
	if !txnType.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %s", apperrors.ErrValidation, req.Type)
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if _, err := s.partyRepo.FindPartyByID(ctx, req.PartyID); err != nil {
		return nil, err
	}
	if req.InvoiceID != nil {
		if _, err := s.invoiceRepo.FindInvoiceByID(ctx, *req.InvoiceID); err != nil {
			return nil, err
		}
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", apperrors.ErrValidation, err)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		PartyID:       req.PartyID,
		InvoiceID:     req.InvoiceID,
		Amount:        req.Amount,
		Date:          date,
		Type:          txnType,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	if txnType == domain.TxnPayment || txnType == domain.TxnReceipt {
		s.activitySvc.Record(ctx, domain.ActivityPaymentReceived,
			fmt.Sprintf("Payment of %s recorded", txn.Amount.StringFixed(2)),
			txn.Notes, txn.InvoiceID, &creatorUserID)
	}

	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	return s.txnRepo.FindTransactions(ctx, limit, offset)
}

func (s *transactionService) ListTransactionsByParty(ctx context.Context, partyID string, limit int, offset int) ([]domain.Transaction, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, partyID); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionsByParty(ctx, partyID, limit, offset)
}
