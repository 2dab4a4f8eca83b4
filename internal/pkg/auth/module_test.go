package auth

import (
	"testing"

	"github.com/shopline/storefront/internal/config"
)

func TestNewPasswordHasher(t *testing.T) {
	if newPasswordHasher() == nil {
		t.Fatal("expected hasher instance")
	}
}

func TestNewTokenStrategy(t *testing.T) {
	strategy := newTokenStrategy(strategyParams{Config: &config.Config{JWTSecret: "secret"}})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}

	token, err := strategy.IssueToken(Claims{Subject: "u-1", Role: "customer"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	claims, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.Subject != "u-1" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
}
