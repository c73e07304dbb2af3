package mapping

import (
	"database/sql"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/models"
)

// ToModelActivity converts a domain.Activity to its DB row shape.
func ToModelActivity(d domain.Activity) models.Activity {
	m := models.Activity{
		ActivityID:  d.ActivityID,
		Type:        string(d.Type),
		Title:       d.Title,
		Description: d.Description,
		Timestamp:   d.Timestamp,
	}
	if d.InvoiceID != nil {
		m.InvoiceID = sql.NullString{String: *d.InvoiceID, Valid: true}
	}
	if d.UserID != nil {
		m.UserID = sql.NullString{String: *d.UserID, Valid: true}
	}
	return m
}

// ToDomainActivity converts an activity row to its domain shape.
func ToDomainActivity(m models.Activity) domain.Activity {
	d := domain.Activity{
		ActivityID:  m.ActivityID,
		Type:        domain.ActivityType(m.Type),
		Title:       m.Title,
		Description: m.Description,
		Timestamp:   m.Timestamp,
	}
	if m.InvoiceID.Valid {
		s := m.InvoiceID.String
		d.InvoiceID = &s
	}
	if m.UserID.Valid {
		s := m.UserID.String
		d.UserID = &s
	}
	return d
}

// ToDomainActivitySlice converts a slice of activity rows.
func ToDomainActivitySlice(ms []models.Activity) []domain.Activity {
	ds := make([]domain.Activity, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActivity(m)
	}
	return ds
}
