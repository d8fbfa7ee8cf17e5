package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"ecotrack-be/internal/cache"
	"ecotrack-be/internal/entities"
	"ecotrack-be/internal/impact"
	"ecotrack-be/internal/models"
	"ecotrack-be/internal/repository"
)

const dashboardCacheTTL = 1 * time.Minute

// ActivityService defines the interface for activity business logic
type ActivityService interface {
	Record(userID string, req *models.CreateActivityRequest) (*entities.Activity, error)
	ListForUser(userID string) ([]*entities.Activity, error)
	Summarize(userID string) (*models.DashboardStats, error)
}

type activityService struct {
	repo  repository.ActivityRepository
	cache cache.Cache
	ctx   context.Context
	now   func() time.Time
}

// NewActivityService creates a new activity service. cacheClient may be
// nil, in which case dashboard stats are always computed from the store.
func NewActivityService(repo repository.ActivityRepository, cacheClient cache.Cache) ActivityService {
	return &activityService{
		repo:  repo,
		cache: cacheClient,
		ctx:   context.Background(),
		now:   time.Now,
	}
}

// Record scores and persists one activity. The owner comes from the
// verified session identity, never from the request body.
func (s *activityService) Record(userID string, req *models.CreateActivityRequest) (*entities.Activity, error) {
	activityType := "Personal"
	if req.ActivityType != nil && *req.ActivityType != "" {
		activityType = *req.ActivityType
	}

	activity := &entities.Activity{
		UserID:       userID,
		Title:        req.Title,
		Category:     req.Category,
		Description:  req.Description,
		Date:         req.Date,
		Location:     req.Location,
		Value:        *req.Value,
		Impact:       impact.Compute(req.Category, *req.Value),
		ActivityType: activityType,
		Status:       "Pending",
	}

	created, err := s.repo.Create(activity)
	if err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	// The cached dashboard is stale now; drop it so the next read
	// recomputes. A cache failure only costs freshness within the TTL.
	if s.cache != nil {
		if err := s.cache.Delete(s.ctx, dashboardCacheKey(userID)); err != nil {
			log.Printf("Warning: failed to invalidate dashboard cache for user %s: %v", userID, err)
		}
	}

	return created, nil
}

// ListForUser retrieves all of a user's activities, most recent first
func (s *activityService) ListForUser(userID string) ([]*entities.Activity, error) {
	return s.repo.GetByUserID(userID)
}

// Summarize computes the user's dashboard stats, cache-aside. "Today"
// is the server's local calendar day.
func (s *activityService) Summarize(userID string) (*models.DashboardStats, error) {
	key := dashboardCacheKey(userID)

	if s.cache != nil {
		var cached models.DashboardStats
		if err := s.cache.GetJSON(s.ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := s.repo.GetDashboardStats(userID, dayStart)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(s.ctx, key, stats, dashboardCacheTTL); err != nil {
			log.Printf("Warning: failed to cache dashboard stats for user %s: %v", userID, err)
		}
	}

	return stats, nil
}

func dashboardCacheKey(userID string) string {
	return fmt.Sprintf("dashboard:%s", userID)
}
