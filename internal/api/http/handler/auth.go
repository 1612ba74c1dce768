package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/dtroode/careercoach-server/internal/logger"
	"github.com/dtroode/careercoach-server/internal/model"
	"github.com/dtroode/careercoach-server/internal/service"
)

var errNoUserInContext = errors.New("authenticated route without user in context")

// AuthService defines password authentication and onboarding operations.
type AuthService interface {
	Signup(ctx context.Context, params service.SignupParams) (service.Session, error)
	Login(ctx context.Context, params service.LoginParams) (service.Session, error)
	CompleteOnboarding(ctx context.Context, userID uuid.UUID, params service.OnboardingParams) (model.User, error)
}

// Auth handles the account endpoints.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type signupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type onboardingRequest struct {
	Industry        string `json:"industry"`
	ExperienceLevel string `json:"experienceLevel"`
}

// Signup creates a password account and returns it with a token.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Signup(r.Context(), service.SignupParams{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.logger.Info("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, sessionResponse{User: newUser(session.User), Token: session.Token})
}

// Login checks a password and returns the account with a token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.authService.Login(r.Context(), service.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.Info("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{User: newUser(session.User), Token: session.Token})
}

// Me returns the authenticated account.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		h.logger.Error("Auth handler: no user in context")
		WriteError(w, errNoUserInContext)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: newUser(user)})
}

// Logout acknowledges the request. Tokens are stateless and stay valid
// until they expire; the client discards its copy.
func (h *Auth) Logout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

// Onboarding stores the industry and experience level of the authenticated account.
func (h *Auth) Onboarding(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		h.logger.Error("Auth handler: no user in context")
		WriteError(w, errNoUserInContext)
		return
	}

	var req onboardingRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	updated, err := h.authService.CompleteOnboarding(r.Context(), user.ID, service.OnboardingParams{
		Industry:        req.Industry,
		ExperienceLevel: req.ExperienceLevel,
	})
	if err != nil {
		h.logger.Info("Auth handler: onboarding failed",
			"user_id", user.ID,
			"error", err.Error())
		WriteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: newUser(updated)})
}
