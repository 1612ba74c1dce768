package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	UpdateOnboarding(ctx context.Context, id uuid.UUID, onboarding Onboarding) (User, error)
	Ping(ctx context.Context) error
}

// User represents a stored user account.
// PasswordHash is empty for accounts created through Google sign-in.
type User struct {
	ID              uuid.UUID
	Email           string
	PasswordHash    string
	FirstName       string
	LastName        string
	Industry        *string
	ExperienceLevel *string
	CreatedAt       time.Time
}

// Onboarding holds the fields written by the onboarding step.
type Onboarding struct {
	Industry        string
	ExperienceLevel string
}

// IsOnboarded reports whether both onboarding fields are set.
func (u User) IsOnboarded() bool {
	return u.Industry != nil && u.ExperienceLevel != nil
}

// HasPassword reports whether the account can log in with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
