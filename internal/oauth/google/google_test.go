package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newFakeGoogle(t *testing.T, userInfoStatus int, info map[string]any) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at-1","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer at-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userInfoStatus)
		_ = json.NewEncoder(w).Encode(info)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestProvider(srv *httptest.Server) *Provider {
	return New("client-id", "client-secret", "http://localhost:5008/api/auth/google/callback",
		WithEndpoint(oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		}),
		WithUserInfoURL(srv.URL+"/userinfo"),
		WithHTTPClient(srv.Client()),
	)
}

func TestProvider_AuthURL(t *testing.T) {
	t.Parallel()

	p := New("client-id", "secret", "http://localhost:5008/api/auth/google/callback")

	raw := p.AuthURL("state-123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "state-123", q.Get("state"))
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "openid profile email", q.Get("scope"))
	assert.Equal(t, "http://localhost:5008/api/auth/google/callback", q.Get("redirect_uri"))
}

func TestProvider_ExchangeGrantForProfile(t *testing.T) {
	t.Parallel()

	srv := newFakeGoogle(t, http.StatusOK, map[string]any{
		"sub":            "1234",
		"email":          "jane@example.com",
		"email_verified": true,
		"name":           "Jane Doe",
		"given_name":     "Jane",
		"family_name":    "Doe",
	})
	p := newTestProvider(srv)

	profile, err := p.ExchangeGrantForProfile(context.Background(), "good-code")
	require.NoError(t, err)

	assert.Equal(t, "1234", profile.Subject)
	assert.Equal(t, "jane@example.com", profile.Email)
	assert.True(t, profile.EmailVerified)
	assert.Equal(t, "Jane", profile.GivenName)
	assert.Equal(t, "Doe", profile.FamilyName)
	assert.Equal(t, "Jane Doe", profile.DisplayName)
}

func TestProvider_ExchangeGrantForProfile_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		code   string
		status int
	}{
		{name: "rejected code", code: "bad-code", status: http.StatusOK},
		{name: "userinfo failure", code: "good-code", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := newFakeGoogle(t, tt.status, map[string]any{"email": "x@y.com"})
			p := newTestProvider(srv)

			_, err := p.ExchangeGrantForProfile(context.Background(), tt.code)
			assert.Error(t, err)
		})
	}
}
