package ftchr

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/andy-shea/ftchr/body"
	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/query"
	"github.com/andy-shea/ftchr/relays"
)

// Fetch dispatches one request. The effective options are the current
// defaults with each of opts layered on top in order.
//
// For GET, params are merged into the query string of path and no body is
// sent. For other methods non nil params are serialized according to the
// effective Content-Type; nil params, a typed nil included, send Options.Body
// as is.
func (f *Fetcher) Fetch(ctx context.Context, method dto.Method, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return f.dispatch(ctx, method, path, params, f.defaults.Snapshot(), opts...)
}

func (f *Fetcher) Get(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return f.Fetch(ctx, dto.GET, path, params, opts...)
}

func (f *Fetcher) Post(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return f.Fetch(ctx, dto.POST, path, params, opts...)
}

func (f *Fetcher) Put(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return f.Fetch(ctx, dto.PUT, path, params, opts...)
}

func (f *Fetcher) Patch(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return f.Fetch(ctx, dto.PATCH, path, params, opts...)
}

func (f *Fetcher) Del(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return f.Fetch(ctx, dto.DELETE, path, params, opts...)
}

// dispatch runs a request against an already captured base layer.
func (f *Fetcher) dispatch(
	ctx context.Context,
	method dto.Method,
	path string,
	params any,
	base dto.Options,
	opts ...dto.Options,
) (*dto.Result, error) {
	effective := base
	for _, o := range opts {
		effective = effective.Merge(o)
	}

	transportRef := effective.TransportRef
	if transportRef == "" {
		transportRef = dto.DEFAULT_TRANSPORT_REF
	}

	f.cfg.Metrics.RecordRequestStart(string(method), transportRef)
	start := time.Now()

	req, err := buildRequest(method, path, params, effective)
	if err != nil {
		req = &dto.Request{Method: method, URL: path, Options: effective}
		err = &dto.RequestError{Method: method, URL: path, Err: err}
		f.record(req, transportRef, nil, err, time.Since(start))
		return nil, err
	}

	transport, err := f.transport(transportRef)
	if err != nil {
		err = &dto.RequestError{Method: method, URL: req.URL, Err: err}
		f.record(req, transportRef, nil, err, time.Since(start))
		return nil, err
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	var result *dto.Result
	raw, err := transport.Do(ctx, req)
	if err != nil {
		if !errors.Is(err, dto.ErrTransport) {
			err = &dto.TransportError{Method: method, URL: req.URL, Err: err}
		}
	} else {
		result, err = Normalize(ctx, raw)
		if isAbort(err) {
			err = &dto.TransportError{Method: method, URL: req.URL, Err: err}
		}
	}

	f.record(req, transportRef, raw, err, time.Since(start))
	return result, err
}

// isAbort reports a bare context error, one no transport or normalizer
// classified.
func isAbort(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := dto.KindOf(err); ok {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func buildRequest(method dto.Method, path string, params any, opts dto.Options) (*dto.Request, error) {
	req := &dto.Request{Method: method, URL: path, Options: opts}

	if method.IsGetClass() {
		url, err := query.Encode(path, params)
		if err != nil {
			return nil, fmt.Errorf("encode query: %w", err)
		}
		req.URL = url
		req.Body = nil
		return req, nil
	}

	if !noParams(params) {
		serialized, err := body.Serialize(opts.Header(dto.HEADER_CONTENT_TYPE), params)
		if err != nil {
			return nil, fmt.Errorf("serialize body: %w", err)
		}
		req.Body = serialized
	}
	return req, nil
}

// noParams reports nil params, including a typed nil map, slice or pointer.
// Empty but non nil containers still count as params.
func noParams(params any) bool {
	if params == nil {
		return true
	}
	v := reflect.ValueOf(params)
	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func (f *Fetcher) record(req *dto.Request, transportRef string, raw dto.RawResponse, err error, duration time.Duration) {
	n := dto.RequestNotification{
		Method:   req.Method,
		URL:      req.URL,
		Duration: duration,
	}
	if raw != nil {
		n.StatusCode = raw.Status()
	}
	if err != nil {
		kind, ok := dto.KindOf(err)
		if !ok {
			kind = dto.KIND_UNKNOWN
		}
		n.Kind = kind
		n.Message = err.Error()
	}

	f.requestState.Set(string(req.Method)+" "+req.URL, n)

	f.cfg.Metrics.RecordRequestEnd(string(req.Method), transportRef, duration)
	f.cfg.Metrics.RecordResponse(string(req.Method), transportRef, n.StatusCode)
	if n.Kind != "" {
		f.cfg.Metrics.RecordError(string(n.Kind), string(req.Method), transportRef)
	}

	evt := relays.RlyFetchRequest{Notification: n, TransportRef: transportRef}
	switch {
	case err == nil:
		f.relay.Debug(evt)
	case errors.Is(err, dto.ErrHTTPStatus):
		f.relay.Warn(evt)
	default:
		f.relay.Error(evt)
	}
}
