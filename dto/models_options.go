package dto

import (
	"net/http"
	"time"
)

// Options are the per-call request options. The same shape is used for
// process defaults and shorthand base options.
type Options struct {
	// Headers are merged key by key when options are layered
	Headers     map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Credentials Credentials       `json:"credentials,omitempty" yaml:"credentials,omitempty"`
	// Body is sent as is when no params are supplied. string, []byte and io.Reader are supported by the bundled transports
	Body         any           `json:"-" yaml:"-"`
	Timeout      time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	TransportRef string        `json:"transport_ref,omitempty" yaml:"transport_ref,omitempty"`
}

// BaselineDefaults is the initial value of every defaults registry.
func BaselineDefaults() Options {
	return Options{
		Credentials: CREDENTIALS_SAME_ORIGIN,
		Headers: map[string]string{
			HEADER_ACCEPT:       MIME_JSON,
			HEADER_CONTENT_TYPE: MIME_JSON,
		},
	}
}

// Clone returns a copy with its own header map. Header keys are canonicalized.
func (o Options) Clone() Options {
	out := o
	out.Headers = make(map[string]string, len(o.Headers))
	for k, v := range o.Headers {
		out.Headers[http.CanonicalHeaderKey(k)] = v
	}
	return out
}

// Merge layers over on top of o. Headers are shallow merged with over
// winning per key; every other field is replaced when set in over.
func (o Options) Merge(over Options) Options {
	out := o.Clone()
	for k, v := range over.Headers {
		out.Headers[http.CanonicalHeaderKey(k)] = v
	}
	if over.Credentials != "" {
		out.Credentials = over.Credentials
	}
	if over.Body != nil {
		out.Body = over.Body
	}
	if over.Timeout > 0 {
		out.Timeout = over.Timeout
	}
	if over.TransportRef != "" {
		out.TransportRef = over.TransportRef
	}
	return out
}

// Header looks a header up by its canonical key.
func (o Options) Header(key string) string {
	if o.Headers == nil {
		return ""
	}
	if v, ok := o.Headers[key]; ok {
		return v
	}
	return o.Headers[http.CanonicalHeaderKey(key)]
}

func (o *Options) WithHeader(key, value string) *Options {
	if o.Headers == nil {
		o.Headers = map[string]string{}
	}
	o.Headers[http.CanonicalHeaderKey(key)] = value
	return o
}

func (o *Options) WithHeaders(headers map[string]string) *Options {
	for k, v := range headers {
		o.WithHeader(k, v)
	}
	return o
}

func (o *Options) WithCredentials(credentials Credentials) *Options {
	o.Credentials = credentials
	return o
}

func (o *Options) WithBody(body any) *Options {
	o.Body = body
	return o
}

func (o *Options) WithTimeout(d time.Duration) *Options {
	o.Timeout = d
	return o
}

func (o *Options) WithTransportRef(ref string) *Options {
	o.TransportRef = ref
	return o
}
