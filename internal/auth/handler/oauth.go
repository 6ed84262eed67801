package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// OAuthLogin redirects the client to the provider's consent screen.
func (h *Handler) OAuthLogin(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown oauth provider"})
		return
	}

	state := generateState(c)
	c.Redirect(http.StatusFound, p.AuthCodeURL(state))
}

// OAuthCallback completes the consent flow: exchange the code, resolve the
// identity to an account, and hand the client a token via redirect. Provider
// failures send the user back to the frontend login page rather than a JSON
// error, since the browser is mid-redirect.
func (h *Handler) OAuthCallback(c *gin.Context) {
	providerName := c.Param("provider")

	p, err := h.providers.Get(providerName)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown oauth provider"})
		return
	}

	if !validateState(c) {
		log.Warn().Str("provider", providerName).Msg("oauth callback state mismatch")
		h.redirectLogin(c)
		return
	}

	if errParam := c.Query("error"); errParam != "" {
		log.Warn().
			Str("provider", providerName).
			Str("error", errParam).
			Str("description", c.Query("error_description")).
			Msg("oauth callback returned error")
		h.redirectLogin(c)
		return
	}

	code := c.Query("code")
	if code == "" {
		log.Error().Str("provider", providerName).Msg("oauth callback missing code")
		h.redirectLogin(c)
		return
	}

	profile, err := p.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		log.Warn().Err(err).Str("provider", providerName).Msg("oauth code exchange failed")
		h.redirectLogin(c)
		return
	}

	account, err := h.resolver.Resolve(c.Request.Context(), profile)
	if err != nil {
		respondError(c, err, "Authentication failed")
		return
	}

	tokenString, err := h.tokens.Issue(account.ID)
	if err != nil {
		respondError(c, err, "Authentication failed")
		return
	}

	userJSON, err := json.Marshal(account.Public())
	if err != nil {
		respondError(c, err, "Authentication failed")
		return
	}

	log.Info().
		Str("account_id", account.ID).
		Str("provider", providerName).
		Msg("oauth login success")

	c.Redirect(http.StatusFound, fmt.Sprintf(
		"%s/dashboard?token=%s&user=%s",
		h.frontendURL,
		url.QueryEscape(tokenString),
		url.QueryEscape(string(userJSON)),
	))
}

func (h *Handler) redirectLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, h.frontendURL+"/login")
}
