package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"

	"golang.org/x/net/publicsuffix"

	"github.com/andy-shea/ftchr/config"
	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/utils"
)

// HTTPClient is the net/http dto.Transport.
//
// It supports multiple authentication modes:
//   - OAuth2 TokenSource (golang.org/x/oauth2)
//   - Custom AuthProvider
//   - Cookie-based sessions
//
// Cookies, both the session cookies of the token and those kept in the
// client's jar, are only sent and stored when the request's credentials mode
// allows it for the target origin.

const TRANSPORT_HTTP dto.TransportType = "ftchr.transport.http"

var ErrDomainNotAllowed = errors.New("domain not allowed")

type HTTPClient struct {
	Info     dto.TransportInfo `json:"transport" yaml:"transport"`
	cfg      *HTTPClientConfig
	fetchCfg *config.FetcherConfig
	client   *http.Client
	jar      http.CookieJar
	token    dto.TokenInfo
	tokenMu  sync.RWMutex
}

func NewHTTPClient(ref string, fetchCfg *config.FetcherConfig, cfg *HTTPClientConfig) *HTTPClient {
	if cfg == nil {
		def := DefaultHTTPClientConfig()
		cfg = &def
	}
	if fetchCfg == nil {
		def := config.DefaultFetcherConfig()
		fetchCfg = &def
	}
	// publicsuffix.List never makes cookiejar.New fail
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})

	return &HTTPClient{
		cfg:      cfg,
		fetchCfg: fetchCfg,
		Info: dto.TransportInfo{
			Name:          "HTTP Client",
			Ref:           ref,
			TransportType: TRANSPORT_HTTP,
			Description:   "Perform HTTP requests with credentials modes and auth support",
		},
		client: &http.Client{
			Timeout:   fetchCfg.RequestTimeout,
			Transport: cfg.roundTripper(),
		},
		jar: jar,
	}
}

func (c *HTTPClient) Ref() string {
	return c.Info.Ref
}

func (c *HTTPClient) Type() dto.TransportType {
	return TRANSPORT_HTTP
}

// Do executes one authenticated, middleware-wrapped exchange and returns the
// fully buffered response. Status codes are not interpreted.
//
// If multiple authentication mechanisms are configured, OAuth2 takes precedence.
// AuthProvider is used as a fallback.
func (c *HTTPClient) Do(ctx context.Context, in *dto.Request) (dto.RawResponse, error) {
	if in == nil {
		return nil, errors.New("nil request provided")
	}
	req := newHTTPRequest(in, c.fetchCfg.BaseURL)

	target, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if !utils.DomainAllowed(target.Hostname(), c.fetchCfg.WhitelistDomains, c.fetchCfg.BlacklistDomains) {
		return nil, fmt.Errorf("%w: %s", ErrDomainNotAllowed, target.Hostname())
	}

	for _, mw := range c.cfg.Middlewares {
		if err := mw(ctx, req); err != nil {
			return nil, fmt.Errorf("middleware aborted: %w", err)
		}
	}

	if err := c.ensureToken(ctx); err != nil {
		return nil, fmt.Errorf("ensure token: %w", err)
	}

	if err := req.FinalizeBody(); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if req.BodyBytes != nil {
		reqBody = bytes.NewReader(req.BodyBytes)
	}
	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	utils.ApplyHeaders(httpReq.Header, c.fetchCfg.ExtraHeaders)
	utils.ApplyHeaders(httpReq.Header, req.Headers)
	if httpReq.Header.Get("User-Agent") == "" && c.fetchCfg.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.fetchCfg.UserAgent)
	}
	// Bodyless requests carry no Content-Type
	if reqBody == nil {
		httpReq.Header.Del(dto.HEADER_CONTENT_TYPE)
	}

	withCookies := c.credentialsAllowed(req.Credentials, httpReq.URL)
	c.tokenMu.RLock()
	c.attachAuth(httpReq, withCookies)
	c.tokenMu.RUnlock()
	if withCookies {
		for _, ck := range c.jar.Cookies(httpReq.URL) {
			httpReq.AddCookie(ck)
		}
	}

	httpResp, reqErr := c.client.Do(httpReq)
	if httpResp != nil {
		defer func() {
			io.Copy(io.Discard, httpResp.Body) // drain fully for connection reuse
			httpResp.Body.Close()
		}()
	}
	if reqErr != nil {
		return nil, fmt.Errorf("perform request: %w", reqErr)
	}

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if withCookies {
		if cookies := httpResp.Cookies(); len(cookies) > 0 {
			c.jar.SetCookies(httpReq.URL, cookies)
		}
	}

	return &dto.Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header.Clone(),
		Body:       bodyBytes,
		URL:        httpReq.URL.String(),
	}, nil
}
