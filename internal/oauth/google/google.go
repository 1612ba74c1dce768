// Package google signs users in with their Google account through the
// OAuth2 authorization code flow and the OpenID Connect userinfo endpoint.
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/dtroode/careercoach-server/internal/model"
)

// UserInfoURL is the OpenID Connect userinfo endpoint of Google.
const UserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// Scopes requested from Google.
var Scopes = []string{"openid", "profile", "email"}

var _ model.IdentityProvider = (*Provider)(nil)

type userInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// Provider is the Google identity provider.
type Provider struct {
	config      *oauth2.Config
	userInfoURL string
	client      *http.Client
}

// Option customizes a Provider.
type Option func(*Provider)

// WithEndpoint replaces the authorization and token endpoints.
func WithEndpoint(endpoint oauth2.Endpoint) Option {
	return func(p *Provider) {
		p.config.Endpoint = endpoint
	}
}

// WithUserInfoURL replaces the userinfo endpoint.
func WithUserInfoURL(url string) Option {
	return func(p *Provider) {
		p.userInfoURL = url
	}
}

// WithHTTPClient sets the client used for the token exchange and userinfo calls.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// New creates a Provider for the registered OAuth client.
func New(clientID, clientSecret, callbackURL string, opts ...Option) *Provider {
	p := &Provider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       Scopes,
			Endpoint:     endpoints.Google,
		},
		userInfoURL: UserInfoURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// AuthURL returns the consent page address carrying state.
func (p *Provider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeGrantForProfile trades an authorization code for the user's profile.
func (p *Provider) ExchangeGrantForProfile(ctx context.Context, code string) (model.ExternalProfile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.client)

	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return model.ExternalProfile{}, fmt.Errorf("failed to exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return model.ExternalProfile{}, fmt.Errorf("failed to build userinfo request: %w", err)
	}

	resp, err := p.config.Client(ctx, tok).Do(req)
	if err != nil {
		return model.ExternalProfile{}, fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return model.ExternalProfile{}, fmt.Errorf("userinfo http %d", resp.StatusCode)
	}

	var info userInfo
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&info); err != nil {
		return model.ExternalProfile{}, fmt.Errorf("failed to decode userinfo: %w", err)
	}

	return model.ExternalProfile{
		Subject:       info.Sub,
		Email:         info.Email,
		EmailVerified: info.EmailVerified,
		GivenName:     info.GivenName,
		FamilyName:    info.FamilyName,
		DisplayName:   info.Name,
	}, nil
}
