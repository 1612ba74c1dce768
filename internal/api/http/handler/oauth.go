package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dtroode/careercoach-server/internal/logger"
	"github.com/dtroode/careercoach-server/internal/service"
)

// FederatedService defines the redirect-based sign-in operations.
type FederatedService interface {
	Start(ctx context.Context) (string, error)
	Complete(ctx context.Context, params service.CallbackParams) (service.Session, error)
}

// OAuth handles the Google sign-in redirects.
type OAuth struct {
	federated   FederatedService
	frontendURL string
	logger      *logger.Logger
}

// NewOAuth creates a new OAuth handler that sends users back to frontendURL.
func NewOAuth(federated FederatedService, frontendURL string, logger *logger.Logger) *OAuth {
	return &OAuth{
		federated:   federated,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		logger:      logger,
	}
}

// Start redirects the browser to the provider consent page.
func (h *OAuth) Start(w http.ResponseWriter, r *http.Request) {
	target, err := h.federated.Start(r.Context())
	if err != nil {
		h.logger.Error("OAuth handler: failed to start sign-in",
			"error", err.Error())
		http.Redirect(w, r, h.failureURL(service.FlagOAuthFailed), http.StatusFound)
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// Callback completes the sign-in and redirects to the frontend with a token
// or an error flag.
func (h *OAuth) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	session, err := h.federated.Complete(r.Context(), service.CallbackParams{
		Code:  q.Get("code"),
		State: q.Get("state"),
		Error: q.Get("error"),
	})
	if err != nil {
		flag := service.FlagOAuthFailed
		var fedErr *service.FederatedError
		if errors.As(err, &fedErr) {
			flag = fedErr.Flag
		}
		h.logger.Info("OAuth handler: sign-in failed",
			"flag", flag,
			"error", err.Error())
		http.Redirect(w, r, h.failureURL(flag), http.StatusFound)
		return
	}

	http.Redirect(w, r, h.successURL(session.Token), http.StatusFound)
}

func (h *OAuth) successURL(token string) string {
	return h.frontendURL + "/oauth-success?" + url.Values{"token": {token}}.Encode()
}

func (h *OAuth) failureURL(flag string) string {
	return h.frontendURL + "/login?" + url.Values{"error": {flag}}.Encode()
}
