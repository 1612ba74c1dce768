package model

import "github.com/google/uuid"

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	UserID uuid.UUID
	Email  string
}

// TokenManager issues and verifies bearer tokens.
type TokenManager interface {
	Issue(userID uuid.UUID, email string) (string, error)
	Parse(token string) (TokenClaims, error)
}
