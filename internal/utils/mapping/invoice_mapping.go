package mapping

import (
	"database/sql"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/models"
)

// ToModelInvoice converts a domain.Invoice to its DB row shape. Items are
// mapped separately since they live in their own table.
func ToModelInvoice(d domain.Invoice) models.Invoice {
	m := models.Invoice{
		InvoiceID:         d.InvoiceID,
		InvoiceNumber:     d.InvoiceNumber,
		SellerPartyID:     d.SellerPartyID,
		BuyerPartyID:      d.BuyerPartyID,
		InvoiceDate:       d.InvoiceDate,
		DueDays:           d.DueDays,
		DueDate:           d.DueDate,
		Terms:             d.Terms,
		CurrencyCode:      d.CurrencyCode,
		Status:            models.InvoiceStatus(d.Status),
		Remarks:           d.Remarks,
		BrokerageRate:     d.BrokerageRate,
		ExchangeRate:      d.ExchangeRate,
		ReceivedBrokerage: d.ReceivedBrokerage,
		Subtotal:          d.Subtotal,
		Brokerage:         d.Brokerage,
		BrokerageInINR:    d.BrokerageInINR,
		BalanceBrokerage:  d.BalanceBrokerage,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.PaymentDate != nil {
		m.PaymentDate = sql.NullTime{Time: *d.PaymentDate, Valid: true}
	}
	return m
}

// ToDomainInvoice converts a DB row to a domain.Invoice.
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	d := domain.Invoice{
		InvoiceID:         m.InvoiceID,
		InvoiceNumber:     m.InvoiceNumber,
		SellerPartyID:     m.SellerPartyID,
		BuyerPartyID:      m.BuyerPartyID,
		InvoiceDate:       m.InvoiceDate,
		DueDays:           m.DueDays,
		DueDate:           m.DueDate,
		Terms:             m.Terms,
		CurrencyCode:      m.CurrencyCode,
		Status:            domain.InvoiceStatus(m.Status),
		Remarks:           m.Remarks,
		BrokerageRate:     m.BrokerageRate,
		ExchangeRate:      m.ExchangeRate,
		ReceivedBrokerage: m.ReceivedBrokerage,
		Subtotal:          m.Subtotal,
		Brokerage:         m.Brokerage,
		BrokerageInINR:    m.BrokerageInINR,
		BalanceBrokerage:  m.BalanceBrokerage,
		SellerName:        m.SellerName,
		BuyerName:         m.BuyerName,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.PaymentDate.Valid {
		t := m.PaymentDate.Time
		d.PaymentDate = &t
	}
	return d
}

// ToModelInvoiceItem converts a domain line item to its DB row shape.
func ToModelInvoiceItem(d domain.InvoiceItem) models.InvoiceItem {
	return models.InvoiceItem{
		ItemID:      d.ItemID,
		InvoiceID:   d.InvoiceID,
		Description: d.Description,
		Quantity:    d.Quantity,
		Rate:        d.Rate,
	}
}

// ToDomainInvoiceItem converts a line item row to its domain shape.
func ToDomainInvoiceItem(m models.InvoiceItem) domain.InvoiceItem {
	return domain.InvoiceItem{
		ItemID:      m.ItemID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		Rate:        m.Rate,
	}
}

// ToDomainInvoiceSlice converts a slice of invoice rows.
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}

// ToDomainInvoiceItemSlice converts a slice of line item rows.
func ToDomainInvoiceItemSlice(ms []models.InvoiceItem) []domain.InvoiceItem {
	ds := make([]domain.InvoiceItem, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoiceItem(m)
	}
	return ds
}
