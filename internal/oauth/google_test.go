package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	apperrors "teamhub/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestProvider(t *testing.T, userInfo string) *GoogleProvider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.Form.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"access-123","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(userInfo))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p := NewGoogleProvider(Config{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://localhost/cb"})
	p.config.Endpoint = oauth2.Endpoint{
		AuthURL:   srv.URL + "/auth",
		TokenURL:  srv.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	p.userInfoURL = srv.URL + "/userinfo"
	return p
}

func TestGoogleProvider_GetAuthURL(t *testing.T) {
	p := NewGoogleProvider(Config{ClientID: "id", RedirectURL: "http://localhost/cb"})

	u, err := url.Parse(p.GetAuthURL("state-1"))
	require.NoError(t, err)

	assert.Equal(t, "google", p.Name())
	assert.Equal(t, "accounts.google.com", u.Host)
	assert.Equal(t, "state-1", u.Query().Get("state"))
	assert.Equal(t, "id", u.Query().Get("client_id"))
	assert.Contains(t, u.Query().Get("scope"), "userinfo.email")
}

func TestGoogleProvider_ExchangeAndUserInfo(t *testing.T) {
	tests := []struct {
		name     string
		userInfo string
		wantErr  error
		want     *UserInfo
	}{
		{
			name:     "verified account",
			userInfo: `{"id":"g-1","email":"jane@example.com","name":"Jane","picture":"https://p/x.png","verified_email":true}`,
			want:     &UserInfo{ID: "g-1", Email: "jane@example.com", Name: "Jane", AvatarURL: "https://p/x.png"},
		},
		{
			name:     "unverified email",
			userInfo: `{"id":"g-1","email":"jane@example.com","verified_email":false}`,
			wantErr:  apperrors.ErrOAuthEmailMissing,
		},
		{
			name:     "missing email",
			userInfo: `{"id":"g-1","verified_email":true}`,
			wantErr:  apperrors.ErrOAuthEmailMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, tt.userInfo)
			ctx := context.Background()

			token, err := p.Exchange(ctx, "the-code")
			require.NoError(t, err)
			assert.Equal(t, "access-123", token.AccessToken)

			info, err := p.GetUserInfo(ctx, token)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, info)
		})
	}
}
