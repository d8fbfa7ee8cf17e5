package controllers

import (
	"errors"
	"log"
	"net/http"

	"ecotrack-be/internal/middleware"
	"ecotrack-be/internal/models"
	"ecotrack-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles POST /register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	if err := ac.authService.Register(&req); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": "User already exists",
			})
			return
		}
		log.Printf("ERROR: register failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
	})
}

// Login handles POST /login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"message": "User not found",
			})
		case errors.Is(err, models.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid password",
			})
		default:
			log.Printf("ERROR: login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Profile handles GET /profile (protected)
func (ac *AuthController) Profile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	user, err := ac.authService.Profile(userID)
	if err != nil {
		// The token verified, so the account existed when it was
		// issued; treat a missing row like any other store failure.
		log.Printf("ERROR: profile lookup failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, models.ProfileResponse{
		Message: "Protected route accessed",
		User:    *user,
	})
}
