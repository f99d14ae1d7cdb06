package dto

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrNilResponse = errors.New("nil response provided")

// Request is what the dispatcher hands to a Transport: the effective options
// with the method, final URL and serialized body set.
type Request struct {
	Method Method `json:"method" yaml:"method"`
	URL    string `json:"url" yaml:"url"`
	Options
}

// Response is a fully buffered RawResponse. Both bundled transports return it.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	URL        string
}

func (r *Response) Status() int {
	return r.StatusCode
}

func (r *Response) Header(key string) string {
	if r.Headers == nil {
		return ""
	}
	return r.Headers.Get(key)
}

func (r *Response) JSON(ctx context.Context) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var contents any
	if err := json.Unmarshal(r.Body, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *Response) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return string(r.Body), nil
}

// Result is the normalized value of a resolved request. Data holds the
// decoded JSON object, or {"contents": value} when the decoded JSON is not an
// object, or is empty when nothing was decoded. Contents is the decoded value
// as is.
type Result struct {
	Data     map[string]any
	Contents any
	Response RawResponse
}

func (r *Result) Get(key string) any {
	if r == nil || r.Data == nil {
		return nil
	}
	return r.Data[key]
}

// String returns Data[key] when it holds a string.
func (r *Result) String(key string) string {
	s, _ := r.Get(key).(string)
	return s
}

func (r *Result) StatusCode() int {
	if r == nil || r.Response == nil {
		return 0
	}
	return r.Response.Status()
}

// Decode unmarshals the raw response body into v.
func (r *Result) Decode(ctx context.Context, v any) error {
	if r == nil || r.Response == nil {
		return ErrNilResponse
	}
	text, err := r.Response.Text(ctx)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
