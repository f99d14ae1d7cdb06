package httpclient

import (
	"net/http"
	"strings"

	"github.com/andy-shea/ftchr/dto"
)

// HTTPRequest is the per-call mutable state middlewares work on. It is built
// from a dto.Request without sharing its header map.
type HTTPRequest struct {
	Method      dto.Method
	URL         string
	Headers     map[string]string
	Credentials dto.Credentials
	Body        any
	// Finalized wire body
	BodyBytes []byte
}

func newHTTPRequest(req *dto.Request, baseURL string) *HTTPRequest {
	r := &HTTPRequest{
		Method:      req.Method,
		URL:         resolveURL(baseURL, req.URL),
		Headers:     make(map[string]string, len(req.Headers)),
		Credentials: req.Credentials,
		Body:        req.Body,
	}
	for k, v := range req.Headers {
		r.Headers[http.CanonicalHeaderKey(k)] = v
	}
	return r
}

func (r *HTTPRequest) SetHeader(k, v string) {
	if r.Headers == nil {
		r.Headers = map[string]string{}
	}
	r.Headers[http.CanonicalHeaderKey(k)] = v
}

func (r *HTTPRequest) Header(k string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers[http.CanonicalHeaderKey(k)]
}

// resolveURL joins a relative path onto baseURL. Absolute URLs and an empty
// baseURL leave path untouched.
func resolveURL(baseURL, path string) string {
	if baseURL == "" || strings.Contains(path, "://") {
		return path
	}
	if path == "" {
		return baseURL
	}
	if strings.HasPrefix(path, "?") {
		return strings.TrimRight(baseURL, "/") + path
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}
