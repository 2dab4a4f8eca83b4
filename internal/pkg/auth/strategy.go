package auth

import "time"

// Claims is the identity carried inside an issued token.
type Claims struct {
	Subject string
	Role    string
}

// Strategy issues and verifies bearer tokens.
type Strategy interface {
	IssueToken(claims Claims) (string, error)
	ParseToken(token string) (Claims, error)
	Name() string
}

// Options tunes token strategies.
type Options struct {
	TTL time.Duration
}
