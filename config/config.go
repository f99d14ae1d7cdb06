package config

import (
	"log/slog"
	"time"

	relayDTO "github.com/joy-dx/relay/dto"

	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/metrics"
	"github.com/andy-shea/ftchr/relays"
)

const (
	DEFAULT_REQUEST_TIMEOUT = 30 * time.Second
	DEFAULT_USER_AGENT      = "ftchr/1.0"
	// DEFAULT_REQUEST_STATE_LIMIT caps the outcomes kept in Fetcher.State
	DEFAULT_REQUEST_STATE_LIMIT = 100
)

// FetcherConfig configures a Fetcher and the transports it hydrates.
type FetcherConfig struct {
	// BaseURL is joined with relative request paths by the HTTP transport.
	// It is also the origin used to decide same-origin credentials
	BaseURL          string           `json:"base_url" yaml:"base_url"`
	RequestTimeout   time.Duration    `json:"request_timeout" yaml:"request_timeout"`
	UserAgent        string           `json:"user_agent" yaml:"user_agent"`
	ExtraHeaders     dto.ExtraHeaders `json:"extra_headers" yaml:"extra_headers"`
	BlacklistDomains []string         `json:"blacklist_domains" yaml:"blacklist_domains"`
	WhitelistDomains []string         `json:"whitelist_domains" yaml:"whitelist_domains"`
	Defaults         dto.Options      `json:"defaults" yaml:"defaults"`
	// RequestStateLimit is how many distinct "METHOD URL" outcomes the
	// fetcher remembers. The oldest is dropped first
	RequestStateLimit int                `json:"request_state_limit" yaml:"request_state_limit"`
	Executor          dto.Executor       `json:"-" yaml:"-"`
	Metrics           *metrics.Collector `json:"-" yaml:"-"`
	relay             relayDTO.RelayInterface
}

func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		RequestTimeout:    DEFAULT_REQUEST_TIMEOUT,
		UserAgent:         DEFAULT_USER_AGENT,
		ExtraHeaders:      dto.ExtraHeaders{},
		BlacklistDomains:  make([]string, 0),
		WhitelistDomains:  make([]string, 0),
		Defaults:          dto.BaselineDefaults(),
		RequestStateLimit: DEFAULT_REQUEST_STATE_LIMIT,
		Executor:          dto.GoroutineExecutor,
	}
}

// Relay returns the configured relay, falling back to one over slog.Default.
func (c *FetcherConfig) Relay() relayDTO.RelayInterface {
	if c.relay == nil {
		c.relay = relays.NewSlogRelay(slog.Default())
	}
	return c.relay
}

func (c *FetcherConfig) WithRelay(relay relayDTO.RelayInterface) *FetcherConfig {
	c.relay = relay
	return c
}

func (c *FetcherConfig) WithBaseURL(baseURL string) *FetcherConfig {
	c.BaseURL = baseURL
	return c
}

func (c *FetcherConfig) WithRequestTimeout(d time.Duration) *FetcherConfig {
	c.RequestTimeout = d
	return c
}

func (c *FetcherConfig) WithUserAgent(ua string) *FetcherConfig {
	c.UserAgent = ua
	return c
}

func (c *FetcherConfig) WithExtraHeader(key, value string) *FetcherConfig {
	if c.ExtraHeaders == nil {
		c.ExtraHeaders = dto.ExtraHeaders{}
	}
	c.ExtraHeaders[key] = value
	return c
}

func (c *FetcherConfig) WithBlacklistDomains(domains ...string) *FetcherConfig {
	c.BlacklistDomains = append(c.BlacklistDomains, domains...)
	return c
}

func (c *FetcherConfig) WithWhitelistDomains(domains ...string) *FetcherConfig {
	c.WhitelistDomains = append(c.WhitelistDomains, domains...)
	return c
}

// WithDefaults sets the initial value of the fetcher's defaults registry.
func (c *FetcherConfig) WithDefaults(defaults dto.Options) *FetcherConfig {
	c.Defaults = defaults.Clone()
	return c
}

func (c *FetcherConfig) WithExecutor(executor dto.Executor) *FetcherConfig {
	c.Executor = executor
	return c
}

func (c *FetcherConfig) WithMetrics(collector *metrics.Collector) *FetcherConfig {
	c.Metrics = collector
	return c
}

func (c *FetcherConfig) WithRequestStateLimit(limit int) *FetcherConfig {
	c.RequestStateLimit = limit
	return c
}
