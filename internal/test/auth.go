package test

import (
	"errors"

	"github.com/shopline/storefront/internal/domain/model"
	"github.com/shopline/storefront/internal/pkg/auth"
)

// TokenParserStub resolves any token to a fixed requester or error.
type TokenParserStub struct {
	Requester model.Requester
	Err       error
}

func (s TokenParserStub) ParseToken(token string) (model.Requester, error) {
	if s.Err != nil {
		return model.Requester{}, s.Err
	}
	return s.Requester, nil
}

// HasherStub lets tests control password hashing.
type HasherStub struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

func (s *HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hash:" + password, nil
}

func (s *HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub lets tests control token issuing and parsing.
type StrategyStub struct {
	IssueTokenFn func(claims auth.Claims) (string, error)
	ParseTokenFn func(token string) (auth.Claims, error)
	NameFn       func() string
}

func (s *StrategyStub) IssueToken(claims auth.Claims) (string, error) {
	if s.IssueTokenFn != nil {
		return s.IssueTokenFn(claims)
	}
	return "token:" + claims.Subject + ":" + claims.Role, nil
}

func (s *StrategyStub) ParseToken(token string) (auth.Claims, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return auth.Claims{}, errors.New("parse not configured")
}

func (s *StrategyStub) Name() string {
	if s.NameFn != nil {
		return s.NameFn()
	}
	return "stub"
}
