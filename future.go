package ftchr

import (
	"context"

	"github.com/andy-shea/ftchr/dto"
)

// Future is the pending outcome of FetchAsync.
type Future struct {
	done   chan struct{}
	result *dto.Result
	err    error
}

// Await blocks until the dispatch finishes or ctx is done. Cancelling ctx
// stops the wait, not the request; cancel the context given to FetchAsync
// for that.
func (fu *Future) Await(ctx context.Context) (*dto.Result, error) {
	select {
	case <-fu.done:
		return fu.result, fu.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done is closed once the outcome is available.
func (fu *Future) Done() <-chan struct{} {
	return fu.done
}

// FetchAsync schedules a dispatch on the configured executor. The defaults
// snapshot is taken before scheduling, so a SetDefaults issued after this
// call returns does not affect the request.
func (f *Fetcher) FetchAsync(ctx context.Context, method dto.Method, path string, params any, opts ...dto.Options) *Future {
	base := f.defaults.Snapshot()
	fu := &Future{done: make(chan struct{})}
	f.cfg.Executor.Go(func() {
		defer close(fu.done)
		fu.result, fu.err = f.dispatch(ctx, method, path, params, base, opts...)
	})
	return fu
}
