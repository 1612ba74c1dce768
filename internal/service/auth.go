package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/careercoach-server/internal/apierrors"
	"github.com/dtroode/careercoach-server/internal/logger"
	"github.com/dtroode/careercoach-server/internal/model"
)

// Session is an authenticated user together with a freshly issued token.
type Session struct {
	User  model.User
	Token string
}

// SignupParams holds the input of a password signup.
type SignupParams struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginParams holds the input of a password login.
type LoginParams struct {
	Email    string
	Password string
}

// OnboardingParams holds the input of the onboarding step.
type OnboardingParams struct {
	Industry        string
	ExperienceLevel string
}

// Auth implements password signup and login, bearer token authentication
// and the onboarding update.
type Auth struct {
	userStore    model.UserStore
	hasher       model.PasswordHasher
	tokenManager model.TokenManager
	logger       *logger.Logger
	now          func() time.Time
}

func NewAuth(
	userStore model.UserStore,
	hasher model.PasswordHasher,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		hasher:       hasher,
		tokenManager: tokenManager,
		logger:       logger,
		now:          time.Now,
	}
}

func (a *Auth) Signup(ctx context.Context, params SignupParams) (Session, error) {
	a.logger.Debug("Auth service: starting signup",
		"email", params.Email)

	if err := validateSignup(params); err != nil {
		return Session{}, err
	}

	_, err := a.userStore.GetByEmail(ctx, params.Email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", params.Email)
		return Session{}, apierrors.NewErrEmailIsTaken()
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", params.Email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Email:        params.Email,
		PasswordHash: hash,
		FirstName:    params.FirstName,
		LastName:     params.LastName,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, model.ErrDuplicateEmail) {
		a.logger.Info("Auth service: email taken by concurrent signup",
			"email", params.Email)
		return Session{}, apierrors.NewErrEmailIsTaken()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := a.tokenManager.Issue(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: signup completed",
		"user_id", user.ID)

	return Session{User: user, Token: token}, nil
}

func (a *Auth) Login(ctx context.Context, params LoginParams) (Session, error) {
	a.logger.Debug("Auth service: starting login",
		"email", params.Email)

	if err := validateLogin(params); err != nil {
		return Session{}, err
	}

	user, err := a.userStore.GetByEmail(ctx, params.Email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: login for unknown email",
			"email", params.Email)
		return Session{}, apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", params.Email,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Google accounts have no hash and never verify.
	if !a.hasher.Verify(params.Password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"user_id", user.ID)
		return Session{}, apierrors.NewErrInvalidCredentials()
	}

	token, err := a.tokenManager.Issue(user.ID, user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to issue token",
			"user_id", user.ID,
			"error", err.Error())
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"user_id", user.ID)

	return Session{User: user, Token: token}, nil
}

// Authenticate resolves a bearer token to the current user record.
func (a *Auth) Authenticate(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, apierrors.NewErrMissingAuthorizationToken()
	}

	claims, err := a.tokenManager.Parse(token)
	if err != nil {
		a.logger.Debug("Auth service: token rejected",
			"error", err.Error())
		return model.User{}, apierrors.NewErrInvalidAuthorizationToken()
	}

	user, err := a.userStore.GetByID(ctx, claims.UserID)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: token for deleted user",
			"user_id", claims.UserID)
		return model.User{}, apierrors.NewErrUserNoLongerExists()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by id",
			"user_id", claims.UserID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (a *Auth) CompleteOnboarding(ctx context.Context, userID uuid.UUID, params OnboardingParams) (model.User, error) {
	a.logger.Debug("Auth service: completing onboarding",
		"user_id", userID)

	params.Industry = strings.TrimSpace(params.Industry)
	params.ExperienceLevel = strings.TrimSpace(params.ExperienceLevel)
	if err := validateOnboarding(params); err != nil {
		return model.User{}, err
	}

	user, err := a.userStore.UpdateOnboarding(ctx, userID, model.Onboarding{
		Industry:        params.Industry,
		ExperienceLevel: params.ExperienceLevel,
	})
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		a.logger.Error("Auth service: failed to update onboarding",
			"user_id", userID,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update onboarding: %w", err)
	}

	a.logger.Info("Auth service: onboarding completed",
		"user_id", userID,
		"industry", params.Industry)

	return user, nil
}

// Ping reports whether the user store is reachable.
func (a *Auth) Ping(ctx context.Context) error {
	return a.userStore.Ping(ctx)
}

func validateSignup(p SignupParams) error {
	var fields []apierrors.FieldError
	fields = checkEmail(fields, p.Email)
	fields = checkRequired(fields, "password", p.Password, "Password is required")
	fields = checkPasswordLength(fields, p.Password)
	fields = checkRequired(fields, "firstName", p.FirstName, "First name is required")
	fields = checkRequired(fields, "lastName", p.LastName, "Last name is required")
	if len(fields) > 0 {
		return apierrors.NewErrValidation(fields...)
	}
	return nil
}

func validateLogin(p LoginParams) error {
	var fields []apierrors.FieldError
	fields = checkEmail(fields, p.Email)
	fields = checkRequired(fields, "password", p.Password, "Password is required")
	if len(fields) > 0 {
		return apierrors.NewErrValidation(fields...)
	}
	return nil
}

func validateOnboarding(p OnboardingParams) error {
	var fields []apierrors.FieldError
	fields = checkRequired(fields, "industry", p.Industry, "Please select an industry")
	fields = checkRequired(fields, "experienceLevel", p.ExperienceLevel, "Please select your experience level")
	if len(fields) > 0 {
		return apierrors.NewErrValidation(fields...)
	}
	return nil
}

func checkRequired(fields []apierrors.FieldError, name, value, msg string) []apierrors.FieldError {
	if value == "" {
		return append(fields, apierrors.FieldError{Field: name, Message: msg})
	}
	return fields
}

func checkPasswordLength(fields []apierrors.FieldError, password string) []apierrors.FieldError {
	if len(password) > model.MaxPasswordBytes {
		msg := fmt.Sprintf("Password must be at most %d bytes", model.MaxPasswordBytes)
		return append(fields, apierrors.FieldError{Field: "password", Message: msg})
	}
	return fields
}

func checkEmail(fields []apierrors.FieldError, email string) []apierrors.FieldError {
	if !isValidEmail(email) {
		return append(fields, apierrors.FieldError{Field: "email", Message: "Please enter a valid email address"})
	}
	return fields
}

// isValidEmail accepts a bare addr-spec with a dotted domain.
func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
