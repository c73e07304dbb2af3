package models

import "database/sql"

// User is the DB row shape for an application user.
type User struct {
	UserID string `db:"user_id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Role   string `db:"role"`
	AuditFields
	DeletedAt sql.NullTime `db:"deleted_at"`
}
