// Package oauth implements third-party sign-in providers.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	apperrors "teamhub/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

//go:generate mockgen -destination=mocks/mock_provider.go -package=mocks teamhub/internal/oauth Provider

const googleUserInfoAPI = "https://www.googleapis.com/oauth2/v2/userinfo"

// UserInfo represents user information from an OAuth provider.
type UserInfo struct {
	ID        string
	Email     string
	Name      string
	AvatarURL string
}

// Provider defines the interface for OAuth providers.
type Provider interface {
	// Name returns the provider name.
	Name() string
	// GetAuthURL returns the OAuth authorization URL.
	GetAuthURL(state string) string
	// Exchange exchanges the authorization code for tokens.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// GetUserInfo fetches user information using the access token.
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error)
}

// Config holds OAuth provider configuration.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string
}

// GoogleProvider implements OAuth for Google.
type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

// NewGoogleProvider creates a new Google OAuth provider.
func NewGoogleProvider(cfg Config) *GoogleProvider {
	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		}
	}

	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       scopes,
			Endpoint:     google.Endpoint,
		},
		userInfoURL: googleUserInfoAPI,
	}
}

// Name returns the provider name.
func (p *GoogleProvider) Name() string {
	return "google"
}

// GetAuthURL returns the OAuth authorization URL.
func (p *GoogleProvider) GetAuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// Exchange exchanges the authorization code for tokens.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}
	return token, nil
}

// GetUserInfo fetches user information from Google.
func (p *GoogleProvider) GetUserInfo(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	client := p.config.Client(ctx, token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google api error: %s", resp.Status)
	}

	var user struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("decode user info: %w", err)
	}

	if user.Email == "" || !user.VerifiedEmail {
		return nil, apperrors.ErrOAuthEmailMissing
	}

	return &UserInfo{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		AvatarURL: user.Picture,
	}, nil
}

var _ Provider = (*GoogleProvider)(nil)
