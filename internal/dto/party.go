package dto

import (
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/utils/money"
)

// CreatePartyRequest defines the data needed to create a new party.
type CreatePartyRequest struct {
	Name          string `json:"name" binding:"required"`
	ContactPerson string `json:"contactPerson" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"omitempty,email"`
	Address       string `json:"address"`
	TaxID         string `json:"taxID"`
	Notes         string `json:"notes"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Pointers distinguish omitted fields from zero-value fields.
type UpdatePartyRequest struct {
	Name          *string `json:"name"`
	ContactPerson *string `json:"contactPerson"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Address       *string `json:"address"`
	TaxID         *string `json:"taxID"`
	Notes         *string `json:"notes"`
}

// PartyResponse defines the data returned for a party, including the
// read-time enrichment fields.
type PartyResponse struct {
	PartyID             string    `json:"partyID"`
	Name                string    `json:"name"`
	ContactPerson       string    `json:"contactPerson"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email,omitempty"`
	Address             string    `json:"address,omitempty"`
	TaxID               string    `json:"taxID,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	OutstandingBalance  string    `json:"outstandingBalance"`
	LastTransactionDate *string   `json:"lastTransactionDate,omitempty"`
	InvoiceCount        int       `json:"invoiceCount"`
	CreatedAt           time.Time `json:"createdAt"`
}

// HasInvoicesResponse answers the party delete-guard probe.
type HasInvoicesResponse struct {
	PartyID      string `json:"partyID"`
	HasInvoices  bool   `json:"hasInvoices"`
	InvoiceCount int    `json:"invoiceCount"`
}

// ListPartiesParams defines query parameters for listing parties.
type ListPartiesParams struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,gte=0"`
}

// ListPartiesResponse wraps the list of parties.
type ListPartiesResponse struct {
	Parties []PartyResponse `json:"parties"`
}

// ToPartyResponse converts a domain.Party to PartyResponse DTO.
func ToPartyResponse(p *domain.Party) PartyResponse {
	return PartyResponse{
		PartyID:             p.PartyID,
		Name:                p.Name,
		ContactPerson:       p.ContactPerson,
		Phone:               p.Phone,
		Email:               p.Email,
		Address:             p.Address,
		TaxID:               p.TaxID,
		Notes:               p.Notes,
		OutstandingBalance:  money.Format(p.OutstandingBalance),
		LastTransactionDate: FormatDatePtr(p.LastTransactionDate),
		InvoiceCount:        p.InvoiceCount,
		CreatedAt:           p.CreatedAt,
	}
}

// ToListPartiesResponse converts a slice of domain.Party to the list DTO.
func ToListPartiesResponse(parties []domain.Party) ListPartiesResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(&p)
	}
	return ListPartiesResponse{Parties: res}
}
