package models

import (
	"database/sql"
	"time"
)

// Activity is the DB row shape for an audit trail entry.
type Activity struct {
	ActivityID  string         `db:"activity_id"`
	Type        string         `db:"type"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Timestamp   time.Time      `db:"timestamp"`
	InvoiceID   sql.NullString `db:"invoice_id"`
	UserID      sql.NullString `db:"user_id"`
}
