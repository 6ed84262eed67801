package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
)

const (
	providerName = "github"

	userEndpoint   = "https://api.github.com/user"
	emailsEndpoint = "https://api.github.com/user/emails"
)

// Provider implements the GitHub OAuth code flow. GitHub is not an OIDC
// issuer, so the profile comes from its REST API rather than an id_token.
type Provider struct {
	oauthConfig *oauth2.Config
}

func New(clientID, clientSecret, redirectURL string) (*Provider, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("github oauth config missing required fields")
	}

	return &Provider{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     githuboauth.Endpoint,
			Scopes:       []string{"read:user", "user:email"},
		},
	}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the OAuth authorization URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state)
}

func (p *Provider) ExchangeCode(ctx context.Context, code string) (*auth.Profile, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: github token exchange: %v", auth.ErrProvider, err)
	}

	client := p.oauthConfig.Client(ctx, token)

	var user struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := getJSON(ctx, client, userEndpoint, &user); err != nil {
		return nil, err
	}
	if user.ID == 0 || user.Login == "" {
		return nil, fmt.Errorf("%w: github profile missing required fields", auth.ErrProvider)
	}

	email := user.Email
	if email == "" {
		// Users can keep their email private; the emails endpoint still
		// returns it under the user:email scope.
		email, _ = p.primaryEmail(ctx, client)
	}

	firstName, lastName := splitName(user.Name, user.Login)

	return &auth.Profile{
		Provider:  providerName,
		SubjectID: strconv.FormatInt(user.ID, 10),
		Email:     email,
		Login:     user.Login,
		FirstName: firstName,
		LastName:  lastName,
		Avatar:    user.AvatarURL,
	}, nil
}

func (p *Provider) primaryEmail(ctx context.Context, client *http.Client) (string, error) {
	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := getJSON(ctx, client, emailsEndpoint, &emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: github request: %v", auth.ErrProvider, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: github api: %v", auth.ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: github api status %d", auth.ErrProvider, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: github api decode: %v", auth.ErrProvider, err)
	}
	return nil
}

// splitName breaks a display name into first/last parts, falling back to the
// login when the profile has no display name.
func splitName(displayName, login string) (string, string) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return login, ""
	}
	parts := strings.Fields(displayName)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
