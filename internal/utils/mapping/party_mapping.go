package mapping

import (
	"database/sql"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/models"
)

// ToModelParty converts a domain.Party to its DB row shape.
func ToModelParty(d domain.Party) models.Party {
	return models.Party{
		PartyID:       d.PartyID,
		Name:          d.Name,
		ContactPerson: d.ContactPerson,
		Phone:         d.Phone,
		Email:         toNullString(d.Email),
		Address:       toNullString(d.Address),
		TaxID:         toNullString(d.TaxID),
		Notes:         toNullString(d.Notes),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParty converts a DB row to a domain.Party.
func ToDomainParty(m models.Party) domain.Party {
	return domain.Party{
		PartyID:       m.PartyID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Phone:         m.Phone,
		Email:         m.Email.String,
		Address:       m.Address.String,
		TaxID:         m.TaxID.String,
		Notes:         m.Notes.String,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPartySlice converts a slice of party rows.
func ToDomainPartySlice(ms []models.Party) []domain.Party {
	ds := make([]domain.Party, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainParty(m)
	}
	return ds
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
