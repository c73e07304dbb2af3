package dto

import (
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/utils/money"
	"github.com/shopspring/decimal"
)

// InvoiceItemRequest is one line item in a create/update payload. Numeric
// range checks (quantity > 0, rate >= 0) run in the service against the
// parsed decimals.
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Rate        decimal.Decimal `json:"rate"`
}

// CreateInvoiceRequest defines the payload for creating an invoice with its
// items in one transactional write. The nefield tag attaches the
// seller/buyer distinctness error to the buyer field specifically.
type CreateInvoiceRequest struct {
	SellerPartyID     string               `json:"sellerPartyID" binding:"required"`
	BuyerPartyID      string               `json:"buyerPartyID" binding:"required,nefield=SellerPartyID"`
	InvoiceDate       string               `json:"invoiceDate" binding:"required,datetime=2006-01-02"`
	DueDays           int                  `json:"dueDays" binding:"gte=0"`
	DueDate           string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Terms             string               `json:"terms"`
	CurrencyCode      string               `json:"currencyCode" binding:"required,currency"`
	BrokerageRate     decimal.Decimal      `json:"brokerageRate"`
	ExchangeRate      decimal.Decimal      `json:"exchangeRate"`
	ReceivedBrokerage decimal.Decimal      `json:"receivedBrokerage"`
	Remarks           string               `json:"remarks"`
	Items             []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateInvoiceRequest defines the data allowed for a partial invoice update.
// Pointers distinguish omitted fields from zero-value fields; derived fields
// are recomputed server-side and cannot be submitted.
type UpdateInvoiceRequest struct {
	SellerPartyID     *string               `json:"sellerPartyID"`
	BuyerPartyID      *string               `json:"buyerPartyID"`
	InvoiceDate       *string               `json:"invoiceDate" binding:"omitempty,datetime=2006-01-02"`
	DueDays           *int                  `json:"dueDays"`
	DueDate           *string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	Terms             *string               `json:"terms"`
	CurrencyCode      *string               `json:"currencyCode" binding:"omitempty,currency"`
	BrokerageRate     *decimal.Decimal      `json:"brokerageRate"`
	ExchangeRate      *decimal.Decimal      `json:"exchangeRate"`
	ReceivedBrokerage *decimal.Decimal      `json:"receivedBrokerage"`
	Remarks           *string               `json:"remarks"`
	Items             *[]InvoiceItemRequest `json:"items" binding:"omitempty,min=1,dive"`
}

// UpdateInvoiceNotesRequest updates only the free-text remarks.
type UpdateInvoiceNotesRequest struct {
	Remarks string `json:"remarks"`
}

// UpdateInvoiceStatusRequest drives an explicit lifecycle transition.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending paid cancelled closed"`
}

// InvoiceItemResponse is one line item in a response. Amount is computed,
// never stored.
type InvoiceItemResponse struct {
	ItemID      string `json:"itemID"`
	Description string `json:"description"`
	Quantity    string `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

// InvoiceResponse defines the data returned for an invoice. Every money
// field is a decimal string with exactly two fractional digits; dates are
// YYYY-MM-DD strings.
type InvoiceResponse struct {
	InvoiceID         string                `json:"invoiceID"`
	InvoiceNumber     string                `json:"invoiceNumber"`
	SellerPartyID     string                `json:"sellerPartyID"`
	SellerName        string                `json:"sellerName,omitempty"`
	BuyerPartyID      string                `json:"buyerPartyID"`
	BuyerName         string                `json:"buyerName,omitempty"`
	InvoiceDate       string                `json:"invoiceDate"`
	DueDays           int                   `json:"dueDays"`
	DueDate           string                `json:"dueDate"`
	Terms             string                `json:"terms"`
	CurrencyCode      string                `json:"currencyCode"`
	Status            string                `json:"status"`        // stored status
	DisplayStatus     string                `json:"displayStatus"` // overdue-aware
	IsClosed          bool                  `json:"isClosed"`      // derived: status != pending
	PaymentDate       *string               `json:"paymentDate,omitempty"`
	Remarks           string                `json:"remarks"`
	BrokerageRate     string                `json:"brokerageRate"`
	ExchangeRate      string                `json:"exchangeRate"`
	ReceivedBrokerage string                `json:"receivedBrokerage"`
	Subtotal          string                `json:"subtotal"`
	Brokerage         string                `json:"brokerage"`
	BrokerageInINR    string                `json:"brokerageInINR"`
	BalanceBrokerage  string                `json:"balanceBrokerage"`
	Items             []InvoiceItemResponse `json:"items,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
	Status    string  `form:"status" binding:"omitempty,oneof=pending paid cancelled closed overdue"`
	PartyID   string  `form:"partyID"`
	From      string  `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To        string  `form:"to" binding:"omitempty,datetime=2006-01-02"`
}

// ListInvoicesResponse wraps a page of invoices with the pagination cursor.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToInvoiceItemResponse converts a domain line item.
func ToInvoiceItemResponse(item domain.InvoiceItem) InvoiceItemResponse {
	return InvoiceItemResponse{
		ItemID:      item.ItemID,
		Description: item.Description,
		Quantity:    money.Format(item.Quantity),
		Rate:        money.Format(item.Rate),
		Amount:      money.Format(item.Amount()),
	}
}

// ToInvoiceResponse converts a domain.Invoice to its wire shape. The display
// status is derived against now.
func ToInvoiceResponse(inv *domain.Invoice, now time.Time) InvoiceResponse {
	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = ToInvoiceItemResponse(item)
	}
	return InvoiceResponse{
		InvoiceID:         inv.InvoiceID,
		InvoiceNumber:     inv.InvoiceNumber,
		SellerPartyID:     inv.SellerPartyID,
		SellerName:        inv.SellerName,
		BuyerPartyID:      inv.BuyerPartyID,
		BuyerName:         inv.BuyerName,
		InvoiceDate:       FormatDate(inv.InvoiceDate),
		DueDays:           inv.DueDays,
		DueDate:           FormatDate(inv.DueDate),
		Terms:             inv.Terms,
		CurrencyCode:      inv.CurrencyCode,
		Status:            string(inv.Status),
		DisplayStatus:     string(inv.DisplayStatus(now)),
		IsClosed:          inv.IsClosed(),
		PaymentDate:       FormatDatePtr(inv.PaymentDate),
		Remarks:           inv.Remarks,
		BrokerageRate:     money.Format(inv.BrokerageRate),
		ExchangeRate:      money.Format(inv.ExchangeRate),
		ReceivedBrokerage: money.Format(inv.ReceivedBrokerage),
		Subtotal:          money.Format(inv.Subtotal),
		Brokerage:         money.Format(inv.Brokerage),
		BrokerageInINR:    money.Format(inv.BrokerageInINR),
		BalanceBrokerage:  money.Format(inv.BalanceBrokerage),
		Items:             items,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.LastUpdatedAt,
	}
}

// ToListInvoicesResponse converts a page of invoices.
func ToListInvoicesResponse(invoices []domain.Invoice, nextToken *string, now time.Time) ListInvoicesResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(&inv, now)
	}
	return ListInvoicesResponse{Invoices: res, NextToken: nextToken}
}
