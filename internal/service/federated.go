package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/careercoach-server/internal/logger"
	"github.com/dtroode/careercoach-server/internal/model"
)

// Redirect flags reported to the frontend when a federated sign-in fails.
const (
	FlagOAuthFailed         = "oauth_failed"
	FlagOAuthCallbackFailed = "oauth_callback_failed"
)

// ErrProviderNotConfigured is returned when no identity provider is set up.
var ErrProviderNotConfigured = errors.New("identity provider not configured")

// FederatedError is a failed federated sign-in with the flag shown to the user.
type FederatedError struct {
	Flag string
	Err  error
}

func (e *FederatedError) Error() string {
	return e.Flag + ": " + e.Err.Error()
}

func (e *FederatedError) Unwrap() error {
	return e.Err
}

func failed(flag string, err error) *FederatedError {
	return &FederatedError{Flag: flag, Err: err}
}

// CallbackParams are the query values the provider redirects back with.
type CallbackParams struct {
	Code  string
	State string
	Error string
}

// Federated bridges an external identity provider to local user accounts.
type Federated struct {
	provider     model.IdentityProvider
	states       model.StateStore
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
	now          func() time.Time
}

// NewFederated creates the bridge. A nil provider disables federated sign-in.
func NewFederated(
	provider model.IdentityProvider,
	states model.StateStore,
	userStore model.UserStore,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Federated {
	return &Federated{
		provider:     provider,
		states:       states,
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
		now:          time.Now,
	}
}

// Start records a fresh state value and returns the provider consent URL.
func (f *Federated) Start(ctx context.Context) (string, error) {
	if f.provider == nil {
		return "", ErrProviderNotConfigured
	}

	state, err := newState()
	if err != nil {
		f.logger.Error("Federated service: failed to generate state",
			"error", err.Error())
		return "", fmt.Errorf("failed to generate state: %w", err)
	}

	if err := f.states.Put(ctx, state, model.StateTTL); err != nil {
		f.logger.Error("Federated service: failed to store state",
			"error", err.Error())
		return "", fmt.Errorf("failed to store state: %w", err)
	}

	f.logger.Debug("Federated service: redirecting to provider")

	return f.provider.AuthURL(state), nil
}

// Complete handles the provider callback and returns a session for the
// resolved user. Every failure is a *FederatedError.
func (f *Federated) Complete(ctx context.Context, params CallbackParams) (Session, error) {
	if f.provider == nil {
		return Session{}, failed(FlagOAuthFailed, ErrProviderNotConfigured)
	}

	if params.Error != "" {
		f.logger.Info("Federated service: provider returned error",
			"provider_error", params.Error)
		return Session{}, failed(FlagOAuthFailed, fmt.Errorf("provider error: %s", params.Error))
	}

	ok, err := f.states.Consume(ctx, params.State)
	if err != nil {
		f.logger.Error("Federated service: failed to consume state",
			"error", err.Error())
		return Session{}, failed(FlagOAuthFailed, fmt.Errorf("failed to consume state: %w", err))
	}
	if !ok {
		f.logger.Info("Federated service: unknown or reused state")
		return Session{}, failed(FlagOAuthFailed, model.ErrStateMismatch)
	}

	if params.Code == "" {
		f.logger.Info("Federated service: callback without code")
		return Session{}, failed(FlagOAuthFailed, errors.New("missing authorization code"))
	}

	profile, err := f.provider.ExchangeGrantForProfile(ctx, params.Code)
	if err != nil {
		f.logger.Error("Federated service: failed to exchange grant",
			"error", err.Error())
		return Session{}, failed(FlagOAuthFailed, err)
	}

	if profile.Email == "" || !profile.EmailVerified {
		f.logger.Info("Federated service: profile without verified email",
			"subject", profile.Subject)
		return Session{}, failed(FlagOAuthFailed, model.ErrNoVerifiedEmail)
	}

	user, err := f.resolveUser(ctx, profile)
	if err != nil {
		return Session{}, failed(FlagOAuthFailed, err)
	}

	token, err := f.tokenManager.Issue(user.ID, user.Email)
	if err != nil {
		f.logger.Error("Federated service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return Session{}, failed(FlagOAuthCallbackFailed, fmt.Errorf("failed to issue token: %w", err))
	}

	f.logger.Info("Federated service: sign-in completed",
		"user_id", user.ID)

	return Session{User: user, Token: token}, nil
}

// resolveUser finds the account for the profile email or creates one
// without a password.
func (f *Federated) resolveUser(ctx context.Context, profile model.ExternalProfile) (model.User, error) {
	user, err := f.userStore.GetByEmail(ctx, profile.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		f.logger.Error("Federated service: failed to get user by email",
			"email", profile.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	firstName, lastName := profileNames(profile)
	user, err = f.userStore.Create(ctx, model.User{
		ID:        uuid.New(),
		Email:     profile.Email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: f.now().UTC(),
	})
	if err != nil {
		f.logger.Error("Federated service: failed to create user",
			"email", profile.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	f.logger.Info("Federated service: user created from profile",
		"user_id", user.ID)

	return user, nil
}

func profileNames(p model.ExternalProfile) (string, string) {
	first, last, _ := strings.Cut(strings.TrimSpace(p.DisplayName), " ")
	last = strings.TrimSpace(last)

	if p.GivenName != "" {
		first = p.GivenName
	}
	if p.FamilyName != "" {
		last = p.FamilyName
	}
	return first, last
}

func newState() (string, error) {
	var b [32]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b[:]), nil
}
