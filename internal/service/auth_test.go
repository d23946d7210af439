package service

import (
	"errors"
	"testing"
	"time"

	"github.com/trackfit/trackfit/internal/model"
	"github.com/trackfit/trackfit/internal/repository"
)

// memUserRepo is an in-memory UserRepository for service tests.
type memUserRepo struct {
	byID    map[string]*model.User
	byEmail map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    map[string]*model.User{},
		byEmail: map[string]*model.User{},
	}
}

func (r *memUserRepo) Create(user *model.User) error {
	if _, exists := r.byEmail[user.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *memUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *memUserRepo) ByEmail(email string) (*model.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthService() *AuthService {
	return NewAuthService(newMemUserRepo(), "test-secret", time.Hour)
}

func TestRegisterHashesPassword(t *testing.T) {
	s := newTestAuthService()

	user, err := s.Register("Alice", "Alice@Example.COM", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Errorf("email not normalized: %q", user.Email)
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Error("password stored unhashed")
	}
	if err := s.ComparePassword("secret123", user.PasswordHash); err != nil {
		t.Errorf("hash does not verify: %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	s := newTestAuthService()

	cases := []struct {
		name, email, password string
	}{
		{"", "user@example.com", "secret123"},
		{"Alice", "not-an-email", "secret123"},
		{"Alice", "user@example.com", "short"},
	}
	for _, tc := range cases {
		if _, err := s.Register(tc.name, tc.email, tc.password); err == nil {
			t.Errorf("Register(%q, %q, %q) succeeded, want error", tc.name, tc.email, tc.password)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	s := newTestAuthService()

	if _, err := s.Register("Alice", "dup@example.com", "secret123"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := s.Register("Other Alice", "DUP@example.com", "different123")
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("duplicate register error = %v, want ErrEmailAlreadyExists", err)
	}
}

func TestLogin(t *testing.T) {
	s := newTestAuthService()

	registered, err := s.Register("Bob", "bob@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := s.Login("bob@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("login returned wrong user: %s", user.ID)
	}

	if _, err := s.Login("bob@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v", err)
	}
	if _, err := s.Login("nobody@example.com", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v", err)
	}
}

func TestJWTRoundtrip(t *testing.T) {
	s := newTestAuthService()

	user := &model.User{ID: "u1", Email: "jwt@example.com"}
	token, err := s.GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := s.VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if claims["user_id"] != "u1" || claims["email"] != "jwt@example.com" {
		t.Errorf("claims = %v", claims)
	}

	// Tokens signed with another secret fail verification
	other := NewAuthService(newMemUserRepo(), "other-secret", time.Hour)
	if _, err := other.VerifyJWT(token); err == nil {
		t.Error("foreign token verified")
	}

	if _, err := s.VerifyJWT("garbage.token.here"); err == nil {
		t.Error("garbage token verified")
	}
}

func TestExpiredJWTRejected(t *testing.T) {
	s := NewAuthService(newMemUserRepo(), "test-secret", -time.Hour)

	token, err := s.GenerateJWT(&model.User{ID: "u1", Email: "old@example.com"})
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := s.VerifyJWT(token); err == nil {
		t.Error("expired token verified")
	}
}
