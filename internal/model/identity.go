package model

import (
	"context"
	"errors"
	"time"
)

// StateTTL bounds how long an OAuth redirect may take to come back.
const StateTTL = 10 * time.Minute

var (
	// ErrNoVerifiedEmail means the identity provider profile carries no usable email.
	ErrNoVerifiedEmail = errors.New("profile has no verified email")
	// ErrStateMismatch means the callback state is unknown, expired or already used.
	ErrStateMismatch = errors.New("oauth state mismatch")
)

// ExternalProfile is the subset of an identity provider profile used to resolve a user.
type ExternalProfile struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string
	FamilyName    string
	DisplayName   string
}

// IdentityProvider drives the redirect-based sign-in with an external provider.
type IdentityProvider interface {
	AuthURL(state string) string
	ExchangeGrantForProfile(ctx context.Context, code string) (ExternalProfile, error)
}

// StateStore keeps one-time OAuth state values between redirect and callback.
type StateStore interface {
	Put(ctx context.Context, state string, ttl time.Duration) error
	Consume(ctx context.Context, state string) (bool, error)
}
