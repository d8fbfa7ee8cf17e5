package service

import (
	"errors"
	"testing"
	"time"

	"ecotrack-be/internal/entities"
	"ecotrack-be/internal/jwt"
	"ecotrack-be/internal/models"
)

type fakeUserRepo struct {
	byEmail map[string]*entities.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(name, email, passwordHash string) (*entities.User, error) {
	if _, ok := r.byEmail[email]; ok {
		return nil, models.ErrEmailTaken
	}
	r.nextID++
	u := &entities.User{
		ID:           string(rune('a' + r.nextID)),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	r.byEmail[email] = u
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entities.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByID(id string) (*entities.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func newTestAuthService() (AuthService, *jwt.JWTService) {
	jwtService := jwt.NewJWTService("test-secret", time.Hour)
	return NewAuthService(newFakeUserRepo(), jwtService), jwtService
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()

	req := &models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}
	if err := svc.Register(req); err != nil {
		t.Fatalf("first Register error: %v", err)
	}

	err := svc.Register(req)
	if !errors.Is(err, models.ErrEmailTaken) {
		t.Fatalf("second Register: got %v, want ErrEmailTaken", err)
	}
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc, jwtService := newTestAuthService()

	if err := svc.Register(&models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	resp, err := svc.Login(&models.LoginRequest{Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if resp.User.Email != "a@x.com" || resp.User.Name != "A" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}

	// The token must verify and carry the identity it was issued for
	claims, err := jwtService.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("ValidateToken error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("token email mismatch: got %q", claims.Email)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()

	_, err := svc.Login(&models.LoginRequest{Email: "nobody@x.com", Password: "p"})
	if !errors.Is(err, models.ErrUserNotFound) {
		t.Fatalf("got %v, want ErrUserNotFound", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, _ := newTestAuthService()

	if err := svc.Register(&models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	_, err := svc.Login(&models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	if !errors.Is(err, models.ErrInvalidPassword) {
		t.Fatalf("got %v, want ErrInvalidPassword", err)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	t.Parallel()

	repo := newFakeUserRepo()
	svc := NewAuthService(repo, jwt.NewJWTService("test-secret", time.Hour))

	if err := svc.Register(&models.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	stored := repo.byEmail["a@x.com"]
	if stored.PasswordHash == "secret1" || stored.PasswordHash == "" {
		t.Fatalf("password stored without hashing: %q", stored.PasswordHash)
	}
}
