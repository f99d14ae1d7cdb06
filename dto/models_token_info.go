package dto

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// TokenInfo represents active credential or session data.
// It supports both header-based tokens and cookie-based sessions.
type TokenInfo struct {
	// AccessToken without its scheme, e.g. "abc123"
	AccessToken string
	// TokenType is inferred if not provided (default "Bearer").
	TokenType string
	// Expiry is zero for sessions that do not expire
	Expiry  time.Time
	Cookies []*http.Cookie
}

// IsExpired returns true if the token is close to or past expiry.
func (t *TokenInfo) IsExpired(buffer time.Duration) bool {
	if t.AccessToken == "" && len(t.Cookies) == 0 {
		return true
	}
	if t.Expiry.IsZero() {
		return false
	}
	return time.Now().After(t.Expiry.Add(-buffer))
}

// Authorization renders the Authorization header value, empty without a token.
func (t *TokenInfo) Authorization() string {
	if t.AccessToken == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", NormalizeAuthType(t.TokenType), t.AccessToken)
}

// NormalizeAuthType ensures proper "Bearer", "Basic", or custom capitalization.
func NormalizeAuthType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "bearer", "":
		return "Bearer"
	case "basic":
		return "Basic"
	default:
		return t
	}
}
