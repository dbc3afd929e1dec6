package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/freelancehub/dashboard/internal/core/domain"
	"github.com/freelancehub/dashboard/internal/core/ports"
)

func newAuthFixture() (*memStore, *AuthService) {
	m := newMemStore()
	m.clients = []domain.Client{{ID: "c1", Name: "TechCorp"}}
	return m, NewAuthService(memUsers{m}, memClients{m}, "secret", time.Hour)
}

func TestAuthService_Register_Success(t *testing.T) {
	_, svc := newAuthFixture()

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice", Password: "pass123", Role: "client", ClientName: "TechCorp",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleClient || user.ClientID != "c1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input ports.RegisterInput
		want  error
	}{
		{"missing username", ports.RegisterInput{Password: "p", Role: "admin"}, domain.ErrValidation},
		{"missing password", ports.RegisterInput{Username: "bob", Role: "admin"}, domain.ErrValidation},
		{"bad role", ports.RegisterInput{Username: "bob", Password: "p", Role: "owner"}, domain.ErrValidation},
		{"client without client", ports.RegisterInput{Username: "bob", Password: "p", Role: "client"}, domain.ErrValidation},
		{"staff with client", ports.RegisterInput{Username: "bob", Password: "p", Role: "freelancer", ClientName: "TechCorp"}, domain.ErrValidation},
		{"unknown client", ports.RegisterInput{Username: "bob", Password: "p", Role: "client", ClientName: "Nobody"}, domain.ErrClientNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, svc := newAuthFixture()
			if _, err := svc.Register(context.Background(), tt.input); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if len(m.users) != 0 {
				t.Fatalf("rejected registration stored a user")
			}
		})
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	_, svc := newAuthFixture()
	in := ports.RegisterInput{Username: "bob", Password: "pass", Role: "admin"}

	_, _ = svc.Register(context.Background(), in)
	if _, err := svc.Register(context.Background(), in); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	_, svc := newAuthFixture()

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Password: "s3cret", Role: "client", ClientName: "TechCorp",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Username != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != "client" || claims["client_id"] != "c1" || claims["username"] != "carol" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	_, svc := newAuthFixture()

	_, _ = svc.Register(context.Background(), ports.RegisterInput{Username: "dave", Password: "goodpass", Role: "freelancer"})
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UserNotFound(t *testing.T) {
	_, svc := newAuthFixture()

	if _, _, err := svc.Login(context.Background(), "ghost", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
