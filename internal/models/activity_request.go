package models

// CreateActivityRequest represents the request body for logging an activity.
// Value must be a JSON number; payloads that fail binding never reach the
// impact calculator.
type CreateActivityRequest struct {
	Title        string   `json:"title" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Description  *string  `json:"description,omitempty"`
	Date         *string  `json:"date,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Value        *float64 `json:"value" binding:"required"`
	ActivityType *string  `json:"activityType,omitempty"` // defaults to "Personal"
}
