package models

import "database/sql"

// Party is the DB row shape for a party.
type Party struct {
	PartyID       string         `db:"party_id"`
	Name          string         `db:"name"`
	ContactPerson string         `db:"contact_person"`
	Phone         string         `db:"phone"`
	Email         sql.NullString `db:"email"`
	Address       sql.NullString `db:"address"`
	TaxID         sql.NullString `db:"tax_id"`
	Notes         sql.NullString `db:"notes"`
	AuditFields
}
