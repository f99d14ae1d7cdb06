package httpclient

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"github.com/andy-shea/ftchr/dto"
)

const (
	// DEFAULT_REFRESH_BUFFER is how long before expiry a session token is renewed
	DEFAULT_REFRESH_BUFFER = 30 * time.Second

	DEFAULT_MAX_IDLE_CONNS        = 50
	DEFAULT_IDLE_CONN_TIMEOUT     = 90 * time.Second
	DEFAULT_TLS_HANDSHAKE_TIMEOUT = 10 * time.Second
)

// Middleware sees every request the HTTP transport is handed, after the base
// URL is applied and before a token is attached. A non nil error stops the
// dispatch; the fetcher reports it as a transport error.
type Middleware func(ctx context.Context, req *HTTPRequest) error

// HTTPClientConfig configures the transport Fetcher.Hydrate registers under
// dto.DEFAULT_TRANSPORT_REF, or any extra HTTPClient registered by hand.
// Base URL, timeout and domain lists come from the FetcherConfig instead.
type HTTPClientConfig struct {
	// AuthProvider issues session tokens when no OAuthSource is set
	AuthProvider dto.AuthProvider
	// OAuthSource wins over AuthProvider when both are set
	OAuthSource   oauth2.TokenSource
	RefreshBuffer time.Duration
	// Middlewares run in order
	Middlewares []Middleware
	// RoundTripper is mostly for tests. Nil selects a pooled *http.Transport
	// honouring the proxy environment
	RoundTripper http.RoundTripper
}

func DefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		RefreshBuffer: DEFAULT_REFRESH_BUFFER,
		Middlewares:   make([]Middleware, 0),
	}
}

func (c *HTTPClientConfig) roundTripper() http.RoundTripper {
	if c.RoundTripper != nil {
		return c.RoundTripper
	}
	return &http.Transport{
		MaxIdleConns:        DEFAULT_MAX_IDLE_CONNS,
		IdleConnTimeout:     DEFAULT_IDLE_CONN_TIMEOUT,
		TLSHandshakeTimeout: DEFAULT_TLS_HANDSHAKE_TIMEOUT,
		Proxy:               http.ProxyFromEnvironment,
	}
}

func (c *HTTPClientConfig) WithAuthProvider(provider dto.AuthProvider) *HTTPClientConfig {
	c.AuthProvider = provider
	return c
}

func (c *HTTPClientConfig) WithOAuthSource(tokenSource oauth2.TokenSource) *HTTPClientConfig {
	c.OAuthSource = tokenSource
	return c
}

// WithRefreshBuffer sets how early a token is renewed. Negative values are
// treated as zero, renewing only once the token has expired.
func (c *HTTPClientConfig) WithRefreshBuffer(d time.Duration) *HTTPClientConfig {
	if d < 0 {
		d = 0
	}
	c.RefreshBuffer = d
	return c
}

// WithMiddleware appends to the chain; earlier middlewares run first.
func (c *HTTPClientConfig) WithMiddleware(m ...Middleware) *HTTPClientConfig {
	c.Middlewares = append(c.Middlewares, m...)
	return c
}

func (c *HTTPClientConfig) WithRoundTripper(rt http.RoundTripper) *HTTPClientConfig {
	c.RoundTripper = rt
	return c
}
