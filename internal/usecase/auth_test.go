package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/shopline/storefront/internal/domain/errors"
	"github.com/shopline/storefront/internal/domain/model"
	pkgAuth "github.com/shopline/storefront/internal/pkg/auth"
	"github.com/shopline/storefront/internal/test"
)

func newAuthUseCase(users *test.UserRepositoryStub, strategy pkgAuth.Strategy) *AuthUseCase {
	return NewAuthUseCase(users, &test.HasherStub{}, strategy)
}

func TestAuthRegister(t *testing.T) {
	users := test.NewUserRepositoryStub()
	uc := newAuthUseCase(users, &test.StrategyStub{})

	usr, token, err := uc.Register(context.Background(), "Ann", "  Ann@Shop.IO ", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.Email != "ann@shop.io" {
		t.Errorf("email not normalized: %q", usr.Email)
	}
	if usr.Role != model.RoleCustomer {
		t.Errorf("self-registration must yield customer, got %q", usr.Role)
	}
	if usr.PasswordHash != "hash:secret" {
		t.Errorf("password not hashed: %q", usr.PasswordHash)
	}
	if token == "" {
		t.Error("expected non-empty token")
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	uc := newAuthUseCase(test.NewUserRepositoryStub(), &test.StrategyStub{})

	cases := []struct {
		name, userName, email, password string
	}{
		{"empty name", "", "a@b.c", "pw"},
		{"empty email", "Ann", "", "pw"},
		{"empty password", "Ann", "a@b.c", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.userName, tc.email, tc.password); !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestAuthRegisterDuplicate(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Seed(model.User{ID: "u-1", Email: "ann@shop.io"})
	uc := newAuthUseCase(users, &test.StrategyStub{})

	if _, _, err := uc.Register(context.Background(), "Ann", "ann@shop.io", "pw"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthAuthenticate(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Seed(model.User{ID: "u-1", Email: "ann@shop.io", Role: model.RoleAdmin, PasswordHash: "hash:secret"})
	var issued pkgAuth.Claims
	strategy := &test.StrategyStub{IssueTokenFn: func(claims pkgAuth.Claims) (string, error) {
		issued = claims
		return "tok", nil
	}}
	uc := newAuthUseCase(users, strategy)

	usr, token, err := uc.Authenticate(context.Background(), "Ann@Shop.IO", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usr.ID != "u-1" || token != "tok" {
		t.Fatalf("unexpected result: %v %q", usr, token)
	}
	if issued.Subject != "u-1" || issued.Role != "admin" {
		t.Errorf("claims carry wrong identity: %+v", issued)
	}
}

func TestAuthAuthenticateRejects(t *testing.T) {
	users := test.NewUserRepositoryStub()
	users.Seed(model.User{ID: "u-1", Email: "ann@shop.io", PasswordHash: "hash:secret"})
	uc := newAuthUseCase(users, &test.StrategyStub{})

	cases := []struct {
		name, email, password string
	}{
		{"unknown email", "nobody@shop.io", "secret"},
		{"wrong password", "ann@shop.io", "nope"},
		{"empty password", "ann@shop.io", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Authenticate(context.Background(), tc.email, tc.password); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthParseToken(t *testing.T) {
	strategy := &test.StrategyStub{ParseTokenFn: func(token string) (pkgAuth.Claims, error) {
		if token != "tok" {
			return pkgAuth.Claims{}, pkgAuth.ErrInvalidToken
		}
		return pkgAuth.Claims{Subject: "u-9", Role: "Admin"}, nil
	}}
	uc := newAuthUseCase(test.NewUserRepositoryStub(), strategy)

	req, err := uc.ParseToken("tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.UserID != "u-9" || req.Role != model.RoleAdmin {
		t.Fatalf("unexpected requester: %+v", req)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
	if _, err := uc.ParseToken("bad"); err == nil {
		t.Fatal("expected error for bad token")
	}
}

func TestAuthParseTokenUnknownRole(t *testing.T) {
	strategy := &test.StrategyStub{ParseTokenFn: func(string) (pkgAuth.Claims, error) {
		return pkgAuth.Claims{Subject: "u-9", Role: "owner"}, nil
	}}
	uc := newAuthUseCase(test.NewUserRepositoryStub(), strategy)

	req, err := uc.ParseToken("tok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Role != model.RoleCustomer {
		t.Fatalf("unknown role must collapse to customer, got %q", req.Role)
	}
}
