package ftchr

import (
	"context"

	"github.com/andy-shea/ftchr/dto"
)

// ResponseHook post-processes every successful result of a Shorthand. Its
// error is returned to the caller unchanged.
type ResponseHook func(ctx context.Context, res *dto.Result) (*dto.Result, error)

// Shorthand is a set of bound methods sharing base options and a hook.
type Shorthand struct {
	fetcher *Fetcher
	base    dto.Options
	hook    ResponseHook
}

// WithDefaults binds base options and an optional hook. The registry snapshot
// is still read on every call, so the layering is snapshot, then base, then
// per call options.
func (f *Fetcher) WithDefaults(base dto.Options, hook ResponseHook) *Shorthand {
	return &Shorthand{fetcher: f, base: base.Clone(), hook: hook}
}

func (s *Shorthand) Get(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return s.do(ctx, dto.GET, path, params, opts...)
}

func (s *Shorthand) Post(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return s.do(ctx, dto.POST, path, params, opts...)
}

func (s *Shorthand) Put(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return s.do(ctx, dto.PUT, path, params, opts...)
}

func (s *Shorthand) Patch(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return s.do(ctx, dto.PATCH, path, params, opts...)
}

func (s *Shorthand) Del(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return s.do(ctx, dto.DELETE, path, params, opts...)
}

func (s *Shorthand) do(ctx context.Context, method dto.Method, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	base := s.fetcher.defaults.Snapshot().Merge(s.base)
	res, err := s.fetcher.dispatch(ctx, method, path, params, base, opts...)
	if err != nil {
		return nil, err
	}
	if s.hook == nil {
		return res, nil
	}
	return s.hook(ctx, res)
}
