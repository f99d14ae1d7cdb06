package httpclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/andy-shea/ftchr/dto"
)

// ensureToken verifies if an active token is valid, auto-refreshing if necessary.
func (c *HTTPClient) ensureToken(ctx context.Context) error {
	if c.cfg.OAuthSource == nil && c.cfg.AuthProvider == nil {
		return nil
	}
	c.tokenMu.RLock()
	valid := !c.token.IsExpired(c.cfg.RefreshBuffer)
	c.tokenMu.RUnlock()
	if valid {
		return nil
	}
	return c.refreshToken(ctx)
}

// refreshToken retrieves a new token using OAuth2 or AuthProvider.
func (c *HTTPClient) refreshToken(ctx context.Context) error {
	c.tokenMu.Lock()
	defer c.tokenMu.Unlock()

	if !c.token.IsExpired(c.cfg.RefreshBuffer) {
		return nil
	}

	// Case 1: OAuth2 integration
	if c.cfg.OAuthSource != nil {
		oauthTok, err := c.cfg.OAuthSource.Token()
		if err != nil {
			return fmt.Errorf("oauth2 token fetch: %w", err)
		}
		c.token.AccessToken = oauthTok.AccessToken
		c.token.TokenType = dto.NormalizeAuthType(oauthTok.TokenType)
		c.token.Expiry = oauthTok.Expiry
		return nil
	}

	// Case 2: custom AuthProvider
	var newTok dto.TokenInfo
	var err error
	if c.token.AccessToken == "" && len(c.token.Cookies) == 0 {
		newTok, err = c.cfg.AuthProvider.Authenticate(ctx)
	} else {
		newTok, err = c.cfg.AuthProvider.Refresh(ctx, c.token)
		if err != nil {
			newTok, err = c.cfg.AuthProvider.Authenticate(ctx)
		}
	}
	if err != nil {
		return fmt.Errorf("auth provider refresh: %w", err)
	}
	newTok.TokenType = dto.NormalizeAuthType(newTok.TokenType)
	c.token = newTok
	return nil
}

// credentialsAllowed applies the fetch credentials modes. Without a BaseURL
// there is no origin to compare against and same-origin behaves like include.
func (c *HTTPClient) credentialsAllowed(mode dto.Credentials, target *url.URL) bool {
	switch mode {
	case dto.CREDENTIALS_OMIT:
		return false
	case dto.CREDENTIALS_INCLUDE:
		return true
	}
	if c.fetchCfg.BaseURL == "" {
		return true
	}
	base, err := url.Parse(c.fetchCfg.BaseURL)
	if err != nil {
		return false
	}
	return sameOrigin(base, target)
}

func sameOrigin(a, b *url.URL) bool {
	return strings.EqualFold(a.Scheme, b.Scheme) && strings.EqualFold(hostPort(a), hostPort(b))
}

func hostPort(u *url.URL) string {
	if port := u.Port(); port != "" {
		return u.Hostname() + ":" + port
	}
	switch strings.ToLower(u.Scheme) {
	case "https":
		return u.Hostname() + ":443"
	case "http":
		return u.Hostname() + ":80"
	}
	return u.Hostname()
}
