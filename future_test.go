package ftchr

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/andy-shea/ftchr/config"
	"github.com/andy-shea/ftchr/dto"
)

func TestFetcher_FetchAsync_SnapshotAtCall(t *testing.T) {
	t.Parallel()

	exec := &queuedExecutor{}
	cfg := config.DefaultFetcherConfig()
	cfg.WithRelay(&fakeRelay{}).WithExecutor(exec)
	f := NewFetcher(&cfg)
	rt := &recordingTransport{}
	f.RegisterTransport(dto.DEFAULT_TRANSPORT_REF, rt)

	fu := f.FetchAsync(context.Background(), dto.GET, "/x", nil)
	f.SetDefaults(dto.Options{Headers: map[string]string{"Accept": "text/html"}})

	select {
	case <-fu.Done():
		t.Fatalf("future finished before the executor ran")
	default:
	}

	exec.Run()
	if _, err := fu.Await(context.Background()); err != nil {
		t.Fatalf("Await error: %v", err)
	}
	if got := rt.Last().Header("Accept"); got != dto.MIME_JSON {
		t.Fatalf("Accept=%q want the snapshot taken at call time", got)
	}
}

func TestFetcher_FetchAsync_Goroutines(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultFetcherConfig()
	cfg.WithRelay(&fakeRelay{})
	f := NewFetcher(&cfg)
	f.RegisterTransport(dto.DEFAULT_TRANSPORT_REF, &recordingTransport{fn: func(ctx context.Context, req *dto.Request) (dto.RawResponse, error) {
		return jsonResponse(200, `{"path":"`+req.URL+`"}`), nil
	}})

	futures := []*Future{
		f.FetchAsync(context.Background(), dto.GET, "/a", nil),
		f.FetchAsync(context.Background(), dto.GET, "/b", nil),
	}
	for i, want := range []string{"/a", "/b"} {
		res, err := futures[i].Await(context.Background())
		if err != nil {
			t.Fatalf("Await error: %v", err)
		}
		if res.String("path") != want {
			t.Fatalf("path=%q want %q", res.String("path"), want)
		}
	}
}

func TestFuture_AwaitContextDone(t *testing.T) {
	t.Parallel()

	fu := &Future{done: make(chan struct{})}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	if _, err := fu.Await(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err=%v want deadline exceeded", err)
	}
}

func TestFuture_AwaitError(t *testing.T) {
	t.Parallel()

	f, _ := newTestFetcher(t, &recordingTransport{fn: respond(jsonResponse(404, `{"message":"nope"}`))})
	_, err := f.FetchAsync(context.Background(), dto.DELETE, "/x", nil).Await(context.Background())
	if !errors.Is(err, dto.ErrHTTPStatus) {
		t.Fatalf("err=%v want http status error", err)
	}
}
