package models

import "ecotrack-be/internal/entities"

// CreateActivityResponse represents the response after logging an activity
type CreateActivityResponse struct {
	Message  string            `json:"message"`
	Activity entities.Activity `json:"activity"`
}

// DashboardStats represents the per-user dashboard aggregates
type DashboardStats struct {
	TodayActivities int     `json:"todayActivities"`
	TotalActivities int     `json:"totalActivities"`
	TotalCO2        float64 `json:"totalCO2"`
	TotalWater      float64 `json:"totalWater"`
}
