package dto

import (
	"net/http"
	"time"
)

type Method string

const (
	GET    Method = http.MethodGet
	POST   Method = http.MethodPost
	PUT    Method = http.MethodPut
	PATCH  Method = http.MethodPatch
	DELETE Method = http.MethodDelete
)

// IsGetClass reports whether params travel in the query string rather than the body.
func (m Method) IsGetClass() bool {
	return m == GET
}

// Credentials mirrors the fetch credentials modes.
type Credentials string

const (
	CREDENTIALS_OMIT        Credentials = "omit"
	CREDENTIALS_SAME_ORIGIN Credentials = "same-origin"
	CREDENTIALS_INCLUDE     Credentials = "include"
)

type TransportType string

const (
	DEFAULT_TRANSPORT_REF               = "default"
	TRANSPORT_FUNC        TransportType = "ftchr.transport.func"
)

// TransportInfo describes a registered transport.
type TransportInfo struct {
	Name          string        `json:"name" yaml:"name"`
	Ref           string        `json:"ref" yaml:"ref"`
	TransportType TransportType `json:"transport_type" yaml:"transport_type"`
	Description   string        `json:"description" yaml:"description"`
}

const (
	HEADER_ACCEPT       = "Accept"
	HEADER_CONTENT_TYPE = "Content-Type"
	MIME_JSON           = "application/json"
	MIME_FORM           = "application/x-www-form-urlencoded"
)

// RequestNotification records the outcome of one dispatch.
type RequestNotification struct {
	Method     Method `json:"method" yaml:"method"`
	URL        string `json:"url" yaml:"url"`
	StatusCode int    `json:"status_code,omitempty" yaml:"status_code,omitempty"`
	// Kind is empty for a resolved request
	Kind     ErrorKind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Message  string        `json:"message,omitempty" yaml:"message,omitempty"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

type FetchState struct {
	BaseURL          string                         `json:"fetch_base_url,omitempty" yaml:"fetch_base_url,omitempty"`
	ExtraHeaders     ExtraHeaders                   `json:"fetch_extra_headers,omitempty" yaml:"fetch_extra_headers,omitempty"`
	RequestTimeout   time.Duration                  `json:"fetch_request_timeout,omitempty" yaml:"fetch_request_timeout,omitempty"`
	UserAgent        string                         `json:"fetch_user_agent,omitempty" yaml:"fetch_user_agent,omitempty"`
	BlacklistDomains []string                       `json:"fetch_blacklist_domains,omitempty" yaml:"fetch_blacklist_domains,omitempty"`
	WhitelistDomains []string                       `json:"fetch_whitelist_domains,omitempty" yaml:"fetch_whitelist_domains,omitempty"`
	Defaults         Options                        `json:"fetch_defaults" yaml:"fetch_defaults"`
	Transports       map[string]TransportType       `json:"fetch_transports,omitempty" yaml:"fetch_transports,omitempty"`
	Requests         map[string]RequestNotification `json:"fetch_requests,omitempty" yaml:"fetch_requests,omitempty"`
}
