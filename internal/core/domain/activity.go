package domain

import "time"

// ActivityType classifies an audit trail entry.
type ActivityType string

const (
	ActivityInvoiceCreated  ActivityType = "invoice_created"
	ActivityInvoiceUpdated  ActivityType = "invoice_updated"
	ActivityInvoiceDeleted  ActivityType = "invoice_deleted"
	ActivityPaymentReceived ActivityType = "payment_received"
	ActivityPartyAdded      ActivityType = "party_added"
	ActivityPaymentReminder ActivityType = "payment_reminder"
	ActivityOther           ActivityType = "other"
)

// Activity is an append-only audit trail entry. Activities are written after
// successful mutations and never updated.
type Activity struct {
	ActivityID  string       `json:"activityID"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	InvoiceID   *string      `json:"invoiceID,omitempty"`
	UserID      *string      `json:"userID,omitempty"`
}
