package repository

import (
	"database/sql"
	"fmt"
	"time"

	"ecotrack-be/internal/entities"
	"ecotrack-be/internal/models"
)

// ActivityRepository defines the interface for activity database operations
type ActivityRepository interface {
	Create(activity *entities.Activity) (*entities.Activity, error)
	GetByUserID(userID string) ([]*entities.Activity, error)
	GetDashboardStats(userID string, dayStart time.Time) (*models.DashboardStats, error)
}

type activityRepository struct {
	db *sql.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create inserts a new activity into the database. ID and created_at
// are assigned by the database.
func (r *activityRepository) Create(activity *entities.Activity) (*entities.Activity, error) {
	query := `
		INSERT INTO activities
			(user_id, title, category, description, activity_date, location,
			 value, co2_saved_kg, water_saved_l, activity_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(query,
		activity.UserID,
		activity.Title,
		activity.Category,
		activity.Description,
		activity.Date,
		activity.Location,
		activity.Value,
		activity.Impact.CO2SavedKg,
		activity.Impact.WaterSavedL,
		activity.ActivityType,
		activity.Status,
	).Scan(&activity.ID, &activity.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	return activity, nil
}

// GetByUserID retrieves all activities for a user, most recent first
func (r *activityRepository) GetByUserID(userID string) ([]*entities.Activity, error) {
	query := `
		SELECT id, user_id, title, category, description, activity_date, location,
		       value, co2_saved_kg, water_saved_l, activity_type, status, created_at
		FROM activities
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	defer rows.Close()

	var activities []*entities.Activity
	for rows.Next() {
		var a entities.Activity
		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Title,
			&a.Category,
			&a.Description,
			&a.Date,
			&a.Location,
			&a.Value,
			&a.Impact.CO2SavedKg,
			&a.Impact.WaterSavedL,
			&a.ActivityType,
			&a.Status,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}

// GetDashboardStats aggregates a user's activities in one pass.
// dayStart is the caller's local midnight; NULL impact columns drop out
// of the sums, so categories that never produced a quantity contribute
// nothing rather than zero-filling.
func (r *activityRepository) GetDashboardStats(userID string, dayStart time.Time) (*models.DashboardStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE created_at >= $2),
			COUNT(*),
			COALESCE(SUM(co2_saved_kg), 0),
			COALESCE(SUM(water_saved_l), 0)
		FROM activities
		WHERE user_id = $1
	`

	var stats models.DashboardStats
	err := r.db.QueryRow(query, userID, dayStart).Scan(
		&stats.TodayActivities,
		&stats.TotalActivities,
		&stats.TotalCO2,
		&stats.TotalWater,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	return &stats, nil
}
