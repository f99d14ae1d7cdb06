package dto

import (
	"context"
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KIND_TRANSPORT   ErrorKind = "transport"
	KIND_DECODE      ErrorKind = "decode"
	KIND_HTTP_STATUS ErrorKind = "http_status"
	KIND_REQUEST     ErrorKind = "request"
	// KIND_UNKNOWN is recorded for errors that carry no kind of their own
	KIND_UNKNOWN ErrorKind = "unknown"
)

var (
	ErrTransport  = errors.New("ftchr: transport failed")
	ErrDecode     = errors.New("ftchr: response decode failed")
	ErrHTTPStatus = errors.New("ftchr: http error status")
	ErrRequest    = errors.New("ftchr: request not dispatched")
)

// RequestError reports a request that never reached a transport, such as
// params that could not be encoded or an unregistered transport ref.
type RequestError struct {
	Method Method
	URL    string
	Err    error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error   { return e.Err }
func (e *RequestError) Is(t error) bool { return t == ErrRequest }
func (e *RequestError) Kind() ErrorKind { return KIND_REQUEST }

// TransportError wraps a failure of the transport itself (network, DNS,
// abort). The cause stays reachable through errors.Is / errors.As.
type TransportError struct {
	Method Method
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error   { return e.Err }
func (e *TransportError) Is(t error) bool { return t == ErrTransport }
func (e *TransportError) Kind() ErrorKind { return KIND_TRANSPORT }

// DecodeError reports a body that claims to be JSON but does not parse.
type DecodeError struct {
	StatusCode int
	// Body is the raw body text when it could be read
	Body     string
	Response RawResponse
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode json response (status %d): %v", e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error   { return e.Err }
func (e *DecodeError) Is(t error) bool { return t == ErrDecode }
func (e *DecodeError) Kind() ErrorKind { return KIND_DECODE }

// HTTPStatusError is returned for status codes >= 400.
type HTTPStatusError struct {
	StatusCode int
	// Contents is the decoded JSON body, nil for non JSON responses
	Contents any
	Response RawResponse
}

func (e *HTTPStatusError) Error() string {
	if msg := e.contentsMessage(); msg != "" {
		return fmt.Sprintf("http status %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("http status %d", e.StatusCode)
}

func (e *HTTPStatusError) Is(t error) bool { return t == ErrHTTPStatus }
func (e *HTTPStatusError) Kind() ErrorKind { return KIND_HTTP_STATUS }

// Message returns the server supplied "message" field, falling back to the
// raw body text.
func (e *HTTPStatusError) Message(ctx context.Context) string {
	if msg := e.contentsMessage(); msg != "" {
		return msg
	}
	if e.Response == nil {
		return ""
	}
	text, err := e.Response.Text(ctx)
	if err != nil {
		return ""
	}
	return text
}

func (e *HTTPStatusError) contentsMessage() string {
	m, ok := e.Contents.(map[string]any)
	if !ok {
		return ""
	}
	msg, _ := m["message"].(string)
	return msg
}

// KindOf reports the ErrorKind carried anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var kinded interface{ Kind() ErrorKind }
	if errors.As(err, &kinded) {
		return kinded.Kind(), true
	}
	return "", false
}
