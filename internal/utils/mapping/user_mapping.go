package mapping

import (
	"database/sql"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
	"github.com/bussnote/bussnote_backend/internal/models"
)

// ToModelUser converts a domain.User to its DB row shape.
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:      d.UserID,
		Name:        d.Name,
		Email:       d.Email,
		Role:        d.Role,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	if d.DeletedAt != nil {
		m.DeletedAt = sql.NullTime{Time: *d.DeletedAt, Valid: true}
	}
	return m
}

// ToDomainUser converts a user row to its domain shape.
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:      m.UserID,
		Name:        m.Name,
		Email:       m.Email,
		Role:        m.Role,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		d.DeletedAt = &t
	}
	return d
}

// ToDomainUserSlice converts a slice of user rows.
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
