package ftchr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/andy-shea/ftchr/config"
	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/metrics"
	"github.com/andy-shea/ftchr/relays"
)

func TestFetcher_Methods_Golden(t *testing.T) {
	t.Parallel()

	type call func(f *Fetcher) (*dto.Result, error)
	ctx := context.Background()

	tests := []struct {
		name string
		call call
		want dto.Method
	}{
		{"get", func(f *Fetcher) (*dto.Result, error) { return f.Get(ctx, "/foo", nil) }, dto.GET},
		{"post", func(f *Fetcher) (*dto.Result, error) { return f.Post(ctx, "/foo", nil) }, dto.POST},
		{"put", func(f *Fetcher) (*dto.Result, error) { return f.Put(ctx, "/foo", nil) }, dto.PUT},
		{"patch", func(f *Fetcher) (*dto.Result, error) { return f.Patch(ctx, "/foo", nil) }, dto.PATCH},
		{"del", func(f *Fetcher) (*dto.Result, error) { return f.Del(ctx, "/foo", nil) }, dto.DELETE},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rt := &recordingTransport{}
			f, _ := newTestFetcher(t, rt)
			if _, err := tt.call(f); err != nil {
				t.Fatalf("call error: %v", err)
			}
			if got := rt.Last(); got.Method != tt.want || got.URL != "/foo" {
				t.Fatalf("got=%s %s want %s /foo", got.Method, got.URL, tt.want)
			}
		})
	}
}

func TestFetcher_RequestShaping_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   dto.Method
		path     string
		params   any
		opts     []dto.Options
		wantURL  string
		wantBody any
	}{
		{
			name:    "get appends params",
			method:  dto.GET,
			path:    "/foo",
			params:  map[string]any{"bar": "baz"},
			wantURL: "/foo?bar=baz",
		},
		{
			name:    "get merges into existing query",
			method:  dto.GET,
			path:    "/foo?hello=world",
			params:  map[string]any{"bar": "baz"},
			wantURL: "/foo?hello=world&bar=baz",
		},
		{
			name:    "get without params keeps path",
			method:  dto.GET,
			path:    "/foo?hello=world",
			wantURL: "/foo?hello=world",
		},
		{
			name:    "get drops any configured body",
			method:  dto.GET,
			path:    "/foo",
			opts:    []dto.Options{{Body: "ignored"}},
			wantURL: "/foo",
		},
		{
			name:     "post serializes json by default",
			method:   dto.POST,
			path:     "/foo",
			params:   dto.NewParams("bar", "baz", "hello", "world"),
			wantURL:  "/foo",
			wantBody: []byte(`{"bar":"baz","hello":"world"}`),
		},
		{
			name:     "put serializes form",
			method:   dto.PUT,
			path:     "/foo",
			params:   dto.NewParams("bar", "baz", "hello", "world"),
			opts:     []dto.Options{{Headers: map[string]string{"content-type": dto.MIME_FORM}}},
			wantURL:  "/foo",
			wantBody: []byte("bar=baz&hello=world"),
		},
		{
			name:     "unknown content type passes params through",
			method:   dto.PATCH,
			path:     "/foo",
			params:   "<div/>",
			opts:     []dto.Options{{Headers: map[string]string{"Content-Type": "text/html"}}},
			wantURL:  "/foo",
			wantBody: "<div/>",
		},
		{
			name:     "nil params keep options body",
			method:   dto.POST,
			path:     "/foo",
			opts:     []dto.Options{{Body: []byte("raw")}},
			wantURL:  "/foo",
			wantBody: []byte("raw"),
		},
		{
			name:     "params replace options body",
			method:   dto.POST,
			path:     "/foo",
			params:   dto.NewParams("a", 1),
			opts:     []dto.Options{{Body: "stale"}},
			wantURL:  "/foo",
			wantBody: []byte(`{"a":1}`),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rt := &recordingTransport{}
			f, _ := newTestFetcher(t, rt)
			if _, err := f.Fetch(context.Background(), tt.method, tt.path, tt.params, tt.opts...); err != nil {
				t.Fatalf("Fetch error: %v", err)
			}
			got := rt.Last()
			if got.URL != tt.wantURL {
				t.Fatalf("url=%q want %q", got.URL, tt.wantURL)
			}
			switch want := tt.wantBody.(type) {
			case nil:
				if got.Body != nil {
					t.Fatalf("body=%v want nil", got.Body)
				}
			case []byte:
				b, ok := got.Body.([]byte)
				if !ok || string(b) != string(want) {
					t.Fatalf("body=%v want %s", got.Body, want)
				}
			default:
				if got.Body != want {
					t.Fatalf("body=%v want %v", got.Body, want)
				}
			}
		})
	}
}

func TestFetcher_CredentialsOverride(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{}
	f, _ := newTestFetcher(t, rt)

	if _, err := f.Get(context.Background(), "/foo", nil, dto.Options{Credentials: dto.CREDENTIALS_INCLUDE}); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	got := rt.Last()
	if got.Credentials != dto.CREDENTIALS_INCLUDE {
		t.Fatalf("credentials=%q want %q", got.Credentials, dto.CREDENTIALS_INCLUDE)
	}
	if got.Header(dto.HEADER_ACCEPT) != dto.MIME_JSON || got.Header(dto.HEADER_CONTENT_TYPE) != dto.MIME_JSON {
		t.Fatalf("default headers lost: %v", got.Headers)
	}
}

func TestFetcher_OptionsLayering(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{}
	f, _ := newTestFetcher(t, rt)

	_, err := f.Get(context.Background(), "/foo", nil,
		dto.Options{Headers: map[string]string{"x-a": "1", "X-B": "1"}},
		dto.Options{Headers: map[string]string{"x-b": "2"}},
	)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	got := rt.Last()
	if got.Header("X-A") != "1" || got.Header("X-B") != "2" || got.Header(dto.HEADER_ACCEPT) != dto.MIME_JSON {
		t.Fatalf("headers=%v", got.Headers)
	}
}

func TestFetcher_SetDefaults_OrderingLaw(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{})
	rt := &recordingTransport{fn: func(ctx context.Context, req *dto.Request) (dto.RawResponse, error) {
		if req.URL == "/slow" {
			close(started)
			<-release
		}
		return jsonResponse(http.StatusOK, `{}`), nil
	}}
	f, _ := newTestFetcher(t, rt)

	errc := make(chan error, 1)
	go func() {
		_, err := f.Get(context.Background(), "/slow", nil)
		errc <- err
	}()
	<-started

	f.SetDefaults(dto.Options{Headers: map[string]string{"Accept": "text/html"}})
	close(release)
	if err := <-errc; err != nil {
		t.Fatalf("slow Get error: %v", err)
	}
	if _, err := f.Get(context.Background(), "/after", nil); err != nil {
		t.Fatalf("Get error: %v", err)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()
	for _, req := range rt.reqs {
		want := dto.MIME_JSON
		if req.URL == "/after" {
			want = "text/html"
		}
		if got := req.Header(dto.HEADER_ACCEPT); got != want {
			t.Fatalf("%s Accept=%q want %q", req.URL, got, want)
		}
	}
}

func TestFetcher_Outcomes_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		raw       dto.RawResponse
		wantData  map[string]any
		wantIs    error
		wantKind  dto.ErrorKind
		wantLevel string
	}{
		{
			name:      "200 json resolves",
			raw:       jsonResponse(200, `{"hello":"world"}`),
			wantData:  map[string]any{"hello": "world"},
			wantLevel: "debug",
		},
		{
			name:      "204 resolves empty without decoding",
			raw:       jsonResponse(204, `not json`),
			wantData:  map[string]any{},
			wantLevel: "debug",
		},
		{
			name:      "200 html resolves empty",
			raw:       textResponse(200, "text/html", "<p>hi</p>"),
			wantData:  map[string]any{},
			wantLevel: "debug",
		},
		{
			name:      "400 json rejects with status kind",
			raw:       jsonResponse(400, `{"message":"error"}`),
			wantIs:    dto.ErrHTTPStatus,
			wantKind:  dto.KIND_HTTP_STATUS,
			wantLevel: "warn",
		},
		{
			name:      "200 malformed json rejects with decode kind",
			raw:       jsonResponse(200, `{"hello":`),
			wantIs:    dto.ErrDecode,
			wantKind:  dto.KIND_DECODE,
			wantLevel: "error",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rt := &recordingTransport{fn: respond(tt.raw)}
			f, relay := newTestFetcher(t, rt)

			res, err := f.Get(context.Background(), "/foo", nil)
			if tt.wantIs != nil {
				if !errors.Is(err, tt.wantIs) {
					t.Fatalf("err=%v want %v", err, tt.wantIs)
				}
				if kind, _ := dto.KindOf(err); kind != tt.wantKind {
					t.Fatalf("kind=%q want %q", kind, tt.wantKind)
				}
			} else {
				if err != nil {
					t.Fatalf("Get error: %v", err)
				}
				if !reflect.DeepEqual(res.Data, tt.wantData) {
					t.Fatalf("data=%v want %v", res.Data, tt.wantData)
				}
				if res.Response != tt.raw {
					t.Fatalf("result lost response reference")
				}
			}

			level, evt := relay.Last()
			if level != tt.wantLevel {
				t.Fatalf("relay level=%q want %q", level, tt.wantLevel)
			}
			if _, ok := evt.(relays.RlyFetchRequest); !ok {
				t.Fatalf("relay event=%T want relays.RlyFetchRequest", evt)
			}
		})
	}
}

func TestFetcher_HTTPStatusError_Message(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  dto.RawResponse
		want string
	}{
		{"json message field", jsonResponse(400, `{"message":"error"}`), "error"},
		{"html body text", textResponse(500, "text/html", "<h1>down</h1>"), "<h1>down</h1>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, _ := newTestFetcher(t, &recordingTransport{fn: respond(tt.raw)})

			_, err := f.Post(context.Background(), "/foo", nil)
			var statusErr *dto.HTTPStatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("err=%v want *dto.HTTPStatusError", err)
			}
			if got := statusErr.Message(context.Background()); got != tt.want {
				t.Fatalf("message=%q want %q", got, tt.want)
			}
			if statusErr.Response != tt.raw {
				t.Fatalf("error lost response reference")
			}
		})
	}
}

func TestFetcher_TransportError(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{fn: func(ctx context.Context, req *dto.Request) (dto.RawResponse, error) {
		return nil, context.Canceled
	}}
	f, relay := newTestFetcher(t, rt)

	_, err := f.Del(context.Background(), "/foo", nil)
	if !errors.Is(err, dto.ErrTransport) || !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want transport error wrapping context.Canceled", err)
	}
	var te *dto.TransportError
	if !errors.As(err, &te) || te.Method != dto.DELETE || te.URL != "/foo" {
		t.Fatalf("err=%#v", err)
	}
	if level, _ := relay.Last(); level != "error" {
		t.Fatalf("relay level=%q want error", level)
	}
}

func TestFetcher_TransportError_NotWrappedTwice(t *testing.T) {
	t.Parallel()

	inner := &dto.TransportError{Method: dto.GET, URL: "/foo", Err: errors.New("refused")}
	rt := &recordingTransport{fn: func(ctx context.Context, req *dto.Request) (dto.RawResponse, error) {
		return nil, inner
	}}
	f, _ := newTestFetcher(t, rt)

	_, err := f.Get(context.Background(), "/foo", nil)
	if err != inner {
		t.Fatalf("err=%v want the transport's own error", err)
	}
}

func TestFetcher_UnknownTransportRef(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{}
	f, _ := newTestFetcher(t, rt)

	_, err := f.Get(context.Background(), "/foo", nil, dto.Options{TransportRef: "s3"})
	if err == nil || !strings.Contains(err.Error(), `transport "s3" not registered`) {
		t.Fatalf("err=%v", err)
	}
	if !errors.Is(err, dto.ErrRequest) {
		t.Fatalf("err=%v want request error", err)
	}
	if rt.Count() != 0 {
		t.Fatalf("default transport called %d times", rt.Count())
	}
}

func TestFetcher_TransportRefRouting(t *testing.T) {
	t.Parallel()

	def := &recordingTransport{}
	other := &recordingTransport{ref: "other"}
	f, _ := newTestFetcher(t, def)
	f.RegisterTransport("other", other)

	if _, err := f.Get(context.Background(), "/foo", nil, dto.Options{TransportRef: "other"}); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if def.Count() != 0 || other.Count() != 1 {
		t.Fatalf("default=%d other=%d", def.Count(), other.Count())
	}
}

func TestFetcher_Timeout(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{fn: func(ctx context.Context, req *dto.Request) (dto.RawResponse, error) {
		if _, ok := ctx.Deadline(); !ok {
			return nil, errors.New("no deadline")
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	f, _ := newTestFetcher(t, rt)

	_, err := f.Get(context.Background(), "/foo", nil, dto.Options{Timeout: 10 * time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) || !errors.Is(err, dto.ErrTransport) {
		t.Fatalf("err=%v want deadline exceeded transport error", err)
	}
}

func TestFetcher_SerializeError(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{}
	f, _ := newTestFetcher(t, rt)

	_, err := f.Post(context.Background(), "/foo", map[string]any{"ch": make(chan int)})
	if err == nil || !strings.Contains(err.Error(), "serialize body") {
		t.Fatalf("err=%v", err)
	}
	if kind, _ := dto.KindOf(err); kind != dto.KIND_REQUEST {
		t.Fatalf("kind=%q want %q", kind, dto.KIND_REQUEST)
	}
	if rt.Count() != 0 {
		t.Fatalf("transport called with an unserializable body")
	}
}

func TestFetcher_Metrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	cfg := config.DefaultFetcherConfig()
	cfg.WithRelay(&fakeRelay{}).WithMetrics(metrics.NewCollectorWithRegistry(reg))
	f := NewFetcher(&cfg)
	f.RegisterTransport(dto.DEFAULT_TRANSPORT_REF, &recordingTransport{fn: respond(jsonResponse(404, `{}`))})

	_, _ = f.Get(context.Background(), "/missing", nil)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	seen := map[string]bool{}
	for _, mf := range families {
		seen[mf.GetName()] = true
	}
	for _, name := range []string{"ftchr_requests_total", "ftchr_errors_total", "ftchr_request_duration_seconds"} {
		if !seen[name] {
			t.Fatalf("metric %s not recorded, got %v", name, seen)
		}
	}
	if n, err := testutil.GatherAndCount(reg, "ftchr_requests_total"); err != nil || n != 1 {
		t.Fatalf("requests_total series=%d err=%v want 1", n, err)
	}
}

func TestFetcher_RequestState_RecordsFailure(t *testing.T) {
	t.Parallel()

	f, _ := newTestFetcher(t, &recordingTransport{fn: respond(jsonResponse(400, `{"message":"bad"}`))})
	_, _ = f.Post(context.Background(), "/foo", nil)

	n, ok := f.State().Requests["POST /foo"]
	if !ok {
		t.Fatalf("request not recorded")
	}
	if n.StatusCode != 400 || n.Kind != dto.KIND_HTTP_STATUS || n.Message != "http status 400: bad" {
		t.Fatalf("notification=%#v", n)
	}
}

func TestFetcher_RequestState_Bounded(t *testing.T) {
	t.Parallel()

	f, _ := newTestFetcher(t, &recordingTransport{})
	ctx := context.Background()

	const calls = 5000
	for i := 0; i < calls; i++ {
		if _, err := f.Get(ctx, "/search", dto.NewParams("q", i)); err != nil {
			t.Fatalf("Get %d: %v", i, err)
		}
	}

	requests := f.State().Requests
	if len(requests) != config.DEFAULT_REQUEST_STATE_LIMIT {
		t.Fatalf("got=%d want %d", len(requests), config.DEFAULT_REQUEST_STATE_LIMIT)
	}
	if _, ok := requests[fmt.Sprintf("GET /search?q=%d", calls-1)]; !ok {
		t.Fatalf("latest request missing")
	}
	if _, ok := requests["GET /search?q=0"]; ok {
		t.Fatalf("oldest request kept")
	}
}

func TestFetcher_RequestState_ConfiguredLimit(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFetcherConfig()
	cfg.WithRelay(&fakeRelay{}).WithExecutor(dto.InlineExecutor).WithRequestStateLimit(2)
	f := NewFetcher(&cfg)
	f.RegisterTransport(dto.DEFAULT_TRANSPORT_REF, &recordingTransport{})
	ctx := context.Background()

	for _, path := range []string{"/a", "/b", "/a", "/c"} {
		if _, err := f.Get(ctx, path, nil); err != nil {
			t.Fatalf("Get %s: %v", path, err)
		}
	}

	requests := f.State().Requests
	if len(requests) != 2 {
		t.Fatalf("got=%v want 2 entries", requests)
	}
	for _, key := range []string{"GET /a", "GET /c"} {
		if _, ok := requests[key]; !ok {
			t.Fatalf("%s missing from %v", key, requests)
		}
	}
}

func TestFetcher_CancelDuringDecode_IsTransportError(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rt := &recordingTransport{fn: func(_ context.Context, req *dto.Request) (dto.RawResponse, error) {
		cancel()
		return jsonResponse(200, `{"a":1}`), nil
	}}
	f, relay := newTestFetcher(t, rt)

	_, err := f.Get(ctx, "/foo", nil)
	if !errors.Is(err, dto.ErrTransport) || !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want transport error wrapping context.Canceled", err)
	}
	if errors.Is(err, dto.ErrDecode) {
		t.Fatalf("err=%v classified as decode failure", err)
	}
	if n := f.State().Requests["GET /foo"]; n.Kind != dto.KIND_TRANSPORT {
		t.Fatalf("kind=%q want %q", n.Kind, dto.KIND_TRANSPORT)
	}
	if level, _ := relay.Last(); level != "error" {
		t.Fatalf("relay level=%q want error", level)
	}
}

func TestFetcher_NilParams_SendNoBody_Golden(t *testing.T) {
	t.Parallel()

	type payload struct{ A string }

	tests := []struct {
		name   string
		params any
	}{
		{"untyped nil", nil},
		{"nil params", dto.Params(nil)},
		{"nil map", map[string]any(nil)},
		{"nil slice", []any(nil)},
		{"nil pointer", (*payload)(nil)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rt := &recordingTransport{}
			f, _ := newTestFetcher(t, rt)
			if _, err := f.Post(context.Background(), "/foo", tt.params); err != nil {
				t.Fatalf("Post error: %v", err)
			}
			if got := rt.Last().Body; got != nil {
				t.Fatalf("body=%#v want none", got)
			}
		})
	}
}

func TestFetcher_EmptyParams_StillSerialized(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{}
	f, _ := newTestFetcher(t, rt)
	if _, err := f.Post(context.Background(), "/foo", map[string]any{}); err != nil {
		t.Fatalf("Post error: %v", err)
	}
	if rt.Last().Body == nil {
		t.Fatalf("empty map dropped")
	}
}

func TestFetcher_UntypedError_Recorded(t *testing.T) {
	t.Parallel()

	rt := &recordingTransport{fn: func(ctx context.Context, req *dto.Request) (dto.RawResponse, error) {
		return nil, nil
	}}
	f, relay := newTestFetcher(t, rt)

	_, err := f.Get(context.Background(), "/foo", nil)
	if !errors.Is(err, dto.ErrNilResponse) {
		t.Fatalf("err=%v want %v", err, dto.ErrNilResponse)
	}
	n := f.State().Requests["GET /foo"]
	if n.Kind != dto.KIND_UNKNOWN || n.Message != dto.ErrNilResponse.Error() {
		t.Fatalf("notification=%#v", n)
	}
	level, evt := relay.Last()
	if level != "error" {
		t.Fatalf("relay level=%q want error", level)
	}
	if msg := evt.Message(); !strings.Contains(msg, "failed (unknown)") {
		t.Fatalf("message=%q", msg)
	}
}

func TestFetcher_EarlyFailures_Recorded_Golden(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		call    func(f *Fetcher) error
		wantKey string
	}{
		{
			name: "unknown transport ref",
			call: func(f *Fetcher) error {
				_, err := f.Get(context.Background(), "/foo", nil, dto.Options{TransportRef: "s3"})
				return err
			},
			wantKey: "GET /foo",
		},
		{
			name: "unserializable body",
			call: func(f *Fetcher) error {
				_, err := f.Post(context.Background(), "/foo", map[string]any{"ch": make(chan int)})
				return err
			},
			wantKey: "POST /foo",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			reg := prometheus.NewRegistry()
			relay := &fakeRelay{}
			cfg := config.DefaultFetcherConfig()
			cfg.WithRelay(relay).WithExecutor(dto.InlineExecutor).WithMetrics(metrics.NewCollectorWithRegistry(reg))
			f := NewFetcher(&cfg)
			f.RegisterTransport(dto.DEFAULT_TRANSPORT_REF, &recordingTransport{})

			if err := tt.call(f); !errors.Is(err, dto.ErrRequest) {
				t.Fatalf("err=%v want request error", err)
			}

			n, ok := f.State().Requests[tt.wantKey]
			if !ok || n.Kind != dto.KIND_REQUEST {
				t.Fatalf("notification=%#v ok=%v", n, ok)
			}
			level, evt := relay.Last()
			if level != "error" {
				t.Fatalf("relay level=%q want error", level)
			}
			if _, ok := evt.(relays.RlyFetchRequest); !ok {
				t.Fatalf("event=%T want relays.RlyFetchRequest", evt)
			}

			if n, err := testutil.GatherAndCount(reg, "ftchr_errors_total"); err != nil || n != 1 {
				t.Fatalf("errors_total series=%d err=%v want 1", n, err)
			}
			families, err := reg.Gather()
			if err != nil {
				t.Fatalf("gather: %v", err)
			}
			for _, mf := range families {
				if mf.GetName() != "ftchr_requests_in_flight" {
					continue
				}
				for _, m := range mf.GetMetric() {
					if v := m.GetGauge().GetValue(); v != 0 {
						t.Fatalf("in flight=%v want 0", v)
					}
				}
			}
		})
	}
}
