package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"

	"github.com/shivam-rawat-4927/auth-service/internal/auth"
)

const providerName = "google"

type Provider struct {
	oauthConfig *oauth2.Config
	verifier    *oidc.IDTokenVerifier
}

func New(
	ctx context.Context,
	clientID string,
	clientSecret string,
	redirectURL string,
) (*Provider, error) {

	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("google oauth config missing required fields")
	}

	oidcProvider, err := oidc.NewProvider(ctx, "https://accounts.google.com")
	if err != nil {
		return nil, fmt.Errorf("failed to init google oidc provider: %w", err)
	}

	verifier := oidcProvider.Verifier(&oidc.Config{
		ClientID: clientID,
	})

	oauthCfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Endpoint:     oidcProvider.Endpoint(),
		Scopes: []string{
			oidc.ScopeOpenID,
			"profile",
			"email",
		},
	}

	return &Provider{
		oauthConfig: oauthCfg,
		verifier:    verifier,
	}, nil
}

// Name returns the provider identifier used by the registry.
func (p *Provider) Name() string {
	return providerName
}

// AuthCodeURL builds the OAuth authorization URL.
func (p *Provider) AuthCodeURL(state string) string {
	return p.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *Provider) ExchangeCode(ctx context.Context, code string) (*auth.Profile, error) {
	token, err := p.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: google token exchange: %v", auth.ErrProvider, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: google did not return id_token", auth.ErrProvider)
	}

	idToken, err := p.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("%w: google id_token verification: %v", auth.ErrProvider, err)
	}

	var claims struct {
		Subject    string `json:"sub"`
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}

	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: google id_token claims parse: %v", auth.ErrProvider, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: google id_token missing subject", auth.ErrProvider)
	}

	log.Info().
		Str("issuer", idToken.Issuer).
		Bool("email_present", claims.Email != "").
		Msg("google oidc verified")

	return &auth.Profile{
		Provider:  providerName,
		SubjectID: claims.Subject,
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		Avatar:    claims.Picture,
	}, nil
}
