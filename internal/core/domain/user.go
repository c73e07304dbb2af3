package domain

import "time"

// User represents an operator of the application. Authentication is handled
// by an external layer; users exist for attribution and the admin screens.
type User struct {
	UserID string `json:"userID"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
