package dto

import (
	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records a payment/ledger event.
type CreateTransactionRequest struct {
	PartyID   string          `json:"partyID" binding:"required"`
	InvoiceID *string         `json:"invoiceID"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Date      string          `json:"date" binding:"required,datetime=2006-01-02"`
	Type      string          `json:"type" binding:"required,oneof=payment receipt adjustment"`
	Notes     string          `json:"notes"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string  `json:"transactionID"`
	PartyID       string  `json:"partyID"`
	InvoiceID     *string `json:"invoiceID,omitempty"`
	Amount        string  `json:"amount"`
	Date          string  `json:"date"`
	Type          string  `json:"type"`
	Notes         string  `json:"notes,omitempty"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ListTransactionsResponse wraps the list of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to its wire shape.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		PartyID:       txn.PartyID,
		InvoiceID:     txn.InvoiceID,
		Amount:        money.Format(txn.Amount),
		Date:          FormatDate(txn.Date),
		Type:          string(txn.Type),
		Notes:         txn.Notes,
	}
}

// ToListTransactionsResponse converts a slice of domain.Transaction.
func ToListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return ListTransactionsResponse{Transactions: res}
}
