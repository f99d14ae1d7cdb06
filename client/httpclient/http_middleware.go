package httpclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	relayDTO "github.com/joy-dx/relay/dto"

	"github.com/andy-shea/ftchr/relays"
	"github.com/andy-shea/ftchr/utils"
)

const HEADER_REQUEST_ID = "X-Request-Id"

// StaticHeaderMiddleware injects static headers into every request.
func StaticHeaderMiddleware(headers map[string]string) Middleware {
	return func(ctx context.Context, r *HTTPRequest) error {
		for k, v := range headers {
			r.SetHeader(k, v)
		}
		return nil
	}
}

// RequestIDMiddleware sets a random UUID under header unless the request
// already carries one. An empty header name means X-Request-Id.
func RequestIDMiddleware(header string) Middleware {
	if header == "" {
		header = HEADER_REQUEST_ID
	}
	return func(ctx context.Context, r *HTTPRequest) error {
		if r.Header(header) == "" {
			r.SetHeader(header, uuid.NewString())
		}
		return nil
	}
}

func LoggingMiddleware(relay relayDTO.RelayInterface) Middleware {
	return func(ctx context.Context, r *HTTPRequest) error {
		relay.Debug(relays.RlyTransportLog{
			TransportRef: string(TRANSPORT_HTTP),
			Method:       r.Method,
			URL:          r.URL,
			Msg:          fmt.Sprintf("[HTTP] %s %s", r.Method, r.URL),
		})
		return nil
	}
}

// DomainGuardMiddleware rejects hosts outside whitelist or inside blacklist,
// on top of the lists of the fetcher config.
func DomainGuardMiddleware(whitelist, blacklist []string) Middleware {
	return func(ctx context.Context, r *HTTPRequest) error {
		u, err := url.Parse(r.URL)
		if err != nil {
			return fmt.Errorf("parse url: %w", err)
		}
		if !utils.DomainAllowed(u.Hostname(), whitelist, blacklist) {
			return fmt.Errorf("%w: %s", ErrDomainNotAllowed, u.Hostname())
		}
		return nil
	}
}
