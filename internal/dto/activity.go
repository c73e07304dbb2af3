package dto

import (
	"time"

	"github.com/bussnote/bussnote_backend/internal/core/domain"
)

// ActivityResponse defines the data returned for an audit trail entry.
type ActivityResponse struct {
	ActivityID  string    `json:"activityID"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	InvoiceID   *string   `json:"invoiceID,omitempty"`
	UserID      *string   `json:"userID,omitempty"`
}

// ListActivitiesParams defines query parameters for the activity feed.
type ListActivitiesParams struct {
	Limit int `form:"limit,default=20" binding:"omitempty,gte=1,lte=100"`
}

// ListActivitiesResponse wraps the activity feed, most recent first.
type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToActivityResponse converts a domain.Activity to its wire shape.
func ToActivityResponse(a *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ActivityID:  a.ActivityID,
		Type:        string(a.Type),
		Title:       a.Title,
		Description: a.Description,
		Timestamp:   a.Timestamp,
		InvoiceID:   a.InvoiceID,
		UserID:      a.UserID,
	}
}

// ToListActivitiesResponse converts a slice of domain.Activity.
func ToListActivitiesResponse(activities []domain.Activity) ListActivitiesResponse {
	res := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		res[i] = ToActivityResponse(&a)
	}
	return ListActivitiesResponse{Activities: res}
}
