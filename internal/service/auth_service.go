package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"ecotrack-be/internal/jwt"
	"ecotrack-be/internal/models"
	"ecotrack-be/internal/repository"
)

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Register(req *models.RegisterRequest) error
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
	Profile(userID string) (*models.UserInfo, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account. The pre-check gives the common
// duplicate a clean answer; the email UNIQUE constraint catches the
// race where two registrations pass the check together.
func (s *authService) Register(req *models.RegisterRequest) error {
	existing, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existing != nil {
		return models.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, models.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword)); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return models.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login authenticates a user and returns a signed session token
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, models.ErrInvalidPassword
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: models.UserInfo{
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

// Profile returns the public view of the authenticated user
func (s *authService) Profile(userID string) (*models.UserInfo, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	return &models.UserInfo{
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
