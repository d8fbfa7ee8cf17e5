package controllers

import (
	"log"
	"net/http"

	"ecotrack-be/internal/entities"
	"ecotrack-be/internal/middleware"
	"ecotrack-be/internal/models"
	"ecotrack-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activityService service.ActivityService
}

func NewActivityController(activityService service.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// Create handles POST /activities (protected)
func (ac *ActivityController) Create(c *gin.Context) {
	var req models.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Title, category and value are required",
			"details": err.Error(),
		})
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	activity, err := ac.activityService.Record(userID, &req)
	if err != nil {
		log.Printf("ERROR: failed to record activity for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, models.CreateActivityResponse{
		Message:  "Activity logged successfully",
		Activity: *activity,
	})
}

// List handles GET /activities (protected)
func (ac *ActivityController) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	activities, err := ac.activityService.ListForUser(userID)
	if err != nil {
		log.Printf("ERROR: failed to list activities for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
		return
	}

	// Always an array, even with no activities
	if activities == nil {
		activities = []*entities.Activity{}
	}

	c.JSON(http.StatusOK, activities)
}

// Dashboard handles GET /dashboard (protected)
func (ac *ActivityController) Dashboard(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	stats, err := ac.activityService.Summarize(userID)
	if err != nil {
		log.Printf("ERROR: failed to summarize activities for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
