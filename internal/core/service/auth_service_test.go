package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/soaeast/crm-api/internal/core/domain"
	"github.com/soaeast/crm-api/internal/core/ports"
)

type stubUserRepo struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	created []*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    map[string]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
}

func (s *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := s.byEmail[user.Email]; ok {
		return domain.ErrEmailTaken
	}
	s.byID[user.ID] = user
	s.byEmail[user.Email] = user
	s.created = append(s.created, user)
	return nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, domain.NotFound("User")
	}
	return user, nil
}

func (s *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := s.byEmail[email]
	if !ok {
		return nil, domain.NotFound("User")
	}
	return user, nil
}

func (s *stubUserRepo) List(_ context.Context, _ ports.UserFilter) ([]*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) UpdateFields(_ context.Context, id string, _ domain.UserPatch) (*domain.User, error) {
	return s.byID[id], nil
}

func (s *stubUserRepo) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	return nil
}

func (s *stubUserRepo) CountByRole(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func newAuthService(repo *stubUserRepo, ttl time.Duration) *AuthService {
	return NewAuthService(repo, "test-secret", ttl, zerolog.Nop())
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:    "jane@soaeast.com",
		Password: "secret123",
		Name:     "Jane Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a signed token")
	}
	if user.Password == "secret123" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
	if user.Initials != "JD" {
		t.Fatalf("expected derived initials JD, got %q", user.Initials)
	}
	if user.Role != "user" {
		t.Fatalf("expected default role, got %q", user.Role)
	}
}

func TestAuthService_Register_UniqueSalts(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	_, first, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "a@soaeast.com", Password: "same-password", Name: "A",
	})
	if err != nil {
		t.Fatalf("register a: %v", err)
	}
	_, second, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "b@soaeast.com", Password: "same-password", Name: "B",
	})
	if err != nil {
		t.Fatalf("register b: %v", err)
	}
	if first.Password == second.Password {
		t.Fatalf("identical passwords produced identical hashes")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	input := ports.RegisterInput{Email: "dup@soaeast.com", Password: "secret123", Name: "Dup"}
	if _, _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, _, err := svc.Register(context.Background(), input)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "jane@soaeast.com", Password: "secret123", Name: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "jane@soaeast.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" || user == nil {
		t.Fatalf("expected token and user")
	}

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims["sub"] != user.ID {
		t.Fatalf("expected sub %q, got %v", user.ID, claims["sub"])
	}
	if claims["email"] != "jane@soaeast.com" {
		t.Fatalf("unexpected email claim: %v", claims["email"])
	}
}

func TestAuthService_Login_UnknownEmailAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	_, _, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "jane@soaeast.com", Password: "secret123", Name: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email and wrong password must be indistinguishable.
	_, _, unknownErr := svc.Login(context.Background(), "nobody@soaeast.com", "secret123")
	_, _, wrongErr := svc.Login(context.Background(), "jane@soaeast.com", "wrong")
	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}

func TestAuthService_VerifyToken_Roundtrip(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "jane@soaeast.com", Password: "secret123", Name: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	resolved, err := svc.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if resolved.ID != user.ID {
		t.Fatalf("expected user %q, got %q", user.ID, resolved.ID)
	}
}

func TestAuthService_VerifyToken_Expired(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	_, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "jane@soaeast.com", Password: "secret123", Name: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	_, err = svc.VerifyToken(context.Background(), signed)
	if !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestAuthService_VerifyToken_Garbage(t *testing.T) {
	svc := newAuthService(newStubUserRepo(), time.Hour)

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	if !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestAuthService_VerifyToken_DeletedUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo, time.Hour)

	token, user, err := svc.Register(context.Background(), ports.RegisterInput{
		Email: "jane@soaeast.com", Password: "secret123", Name: "Jane Doe",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := repo.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	_, err = svc.VerifyToken(context.Background(), token)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
