package mapping

import (
	"database/sql"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/models"
)

// ToModelTransaction converts a domain.Transaction to its DB row shape.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	m := models.Transaction{
		TransactionID: d.TransactionID,
		PartyID:       d.PartyID,
		Amount:        d.Amount,
		Date:          d.Date,
		Type:          string(d.Type),
		Notes:         d.Notes,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.InvoiceID != nil {
		m.InvoiceID = sql.NullString{String: *d.InvoiceID, Valid: true}
	}
	return m
}

// ToDomainTransaction converts a transaction row to its domain shape.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	d := domain.Transaction{
		TransactionID: m.TransactionID,
		PartyID:       m.PartyID,
		Amount:        m.Amount,
		Date:          m.Date,
		Type:          domain.TransactionType(m.Type),
		Notes:         m.Notes,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.InvoiceID.Valid {
		s := m.InvoiceID.String
		d.InvoiceID = &s
	}
	return d
}

// ToDomainTransactionSlice converts a slice of transaction rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
