package profile

import (
	"context"
	"errors"
	"testing"
)

func register(s *Service) (*User, error) {
	return s.Register(context.Background(), "أحمد", "حسن", "ahmed@example.com", "Password@123")
}

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	user, err := register(service)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Password == "Password@123" {
		t.Fatal("password was stored in plain text")
	}
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name                                  string
		firstName, lastName, email, password  string
		want                                  error
	}{
		{"missing first name", " ", "حسن", "a@b.co", "123456", ErrFirstNameRequired},
		{"missing last name", "أحمد", "", "a@b.co", "123456", ErrLastNameRequired},
		{"missing email", "أحمد", "حسن", "", "123456", ErrEmailRequired},
		{"invalid email", "أحمد", "حسن", "not-an-email", "123456", ErrEmailInvalid},
		{"email with spaces", "أحمد", "حسن", "a b@c.co", "123456", ErrEmailInvalid},
		{"missing password", "أحمد", "حسن", "a@b.co", "  ", ErrPasswordRequired},
		{"short password", "أحمد", "حسن", "a@b.co", "12345", ErrPasswordTooShort},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(NewInMemoryUserRepository())
			_, err := service.Register(context.Background(), tt.firstName, tt.lastName, tt.email, tt.password)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	if _, err := register(service); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := register(service); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	service := NewService(NewInMemoryUserRepository())
	if _, err := register(service); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user, err := service.Login(context.Background(), "ahmed@example.com", "Password@123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.FirstName != "أحمد" {
		t.Fatalf("unexpected user: %+v", user)
	}

	if _, err := service.Login(context.Background(), "ahmed@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := service.Login(context.Background(), "nobody@example.com", "Password@123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
