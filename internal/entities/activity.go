package entities

import (
	"time"

	"ecotrack-be/internal/impact"
)

// Activity represents one logged impact activity in the database.
// The owner is always the authenticated user; activities are immutable
// once recorded.
type Activity struct {
	ID           string          `json:"id"`     // UUID
	UserID       string          `json:"userId"` // UUID, set from the verified token
	Title        string          `json:"title"`
	Category     string          `json:"category"`
	Description  *string         `json:"description,omitempty"`
	Date         *string         `json:"date,omitempty"`     // free-form, as submitted
	Location     *string         `json:"location,omitempty"`
	Value        float64         `json:"value"`
	Impact       impact.Estimate `json:"impact"`
	ActivityType string          `json:"activityType"`
	Status       string          `json:"status"` // always "Pending"; no workflow consumes it
	CreatedAt    time.Time       `json:"createdAt"`
}
