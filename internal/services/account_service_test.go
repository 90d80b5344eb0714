package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"agenda/internal/infra"
	"agenda/internal/models/request_models"
	"agenda/internal/repositories"
	"agenda/pkg/utils"
)

func newAccountService(t *testing.T) AccountServiceInterface {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewAccountService(repositories.NewAccountRepository(db))
}

func TestAccountService_RegisterAndLogin(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	signUp := request_models.SignUpRequest{
		Name:     "Scheduler",
		Email:    "scheduler@example.com",
		Password: "rahasia123",
	}
	if err := svc.CreateAccount(ctx, signUp); err != nil {
		t.Fatalf("create account: %v", err)
	}

	token, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "scheduler@example.com",
		Password: "rahasia123",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	claims, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.UserID == "" {
		t.Fatal("expected a user id claim")
	}
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	if err := svc.CreateAccount(ctx, request_models.SignUpRequest{
		Name:     "Scheduler",
		Email:    "scheduler@example.com",
		Password: "rahasia123",
	}); err != nil {
		t.Fatalf("create account: %v", err)
	}

	_, err := svc.Login(ctx, request_models.LoginRequest{
		Email:    "scheduler@example.com",
		Password: "salah",
	})
	if !errors.Is(err, utils.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	svc := newAccountService(t)

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "rahasia123",
	})
	if !errors.Is(err, utils.ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc := newAccountService(t)
	ctx := context.Background()

	req := request_models.SignUpRequest{
		Name:     "Scheduler",
		Email:    "scheduler@example.com",
		Password: "rahasia123",
	}
	if err := svc.CreateAccount(ctx, req); err != nil {
		t.Fatalf("create account: %v", err)
	}
	if err := svc.CreateAccount(ctx, req); !errors.Is(err, utils.ErrEmailAlreadyExists) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
}
