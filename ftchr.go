// Package ftchr is a request helper over a pluggable Transport. It merges
// params into query strings for GET, serializes bodies by Content-Type for the
// other methods, layers default options under per call options and
// normalizes every response into a *dto.Result or a typed error.
//
// The package level functions use the Fetcher returned by ProvideFetcher,
// hydrated with the default net/http transport on first use.
package ftchr

import (
	"context"
	"sync"

	"github.com/andy-shea/ftchr/config"
	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/relays"
)

var defaultOnce sync.Once

// Default returns the process wide Fetcher used by the package level API.
func Default() *Fetcher {
	defaultOnce.Do(func() {
		cfg := config.DefaultFetcherConfig()
		f := ProvideFetcher(&cfg)
		if !f.hydrated.Load() {
			if err := f.Hydrate(context.Background()); err != nil {
				f.relay.Error(relays.RlyFetchLog{Msg: "hydrate default fetcher: " + err.Error()})
			}
		}
	})
	return service
}

func Fetch(ctx context.Context, method dto.Method, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return Default().Fetch(ctx, method, path, params, opts...)
}

func Get(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return Default().Get(ctx, path, params, opts...)
}

func Post(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return Default().Post(ctx, path, params, opts...)
}

func Put(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return Default().Put(ctx, path, params, opts...)
}

func Patch(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return Default().Patch(ctx, path, params, opts...)
}

func Del(ctx context.Context, path string, params any, opts ...dto.Options) (*dto.Result, error) {
	return Default().Del(ctx, path, params, opts...)
}

func FetchAsync(ctx context.Context, method dto.Method, path string, params any, opts ...dto.Options) *Future {
	return Default().FetchAsync(ctx, method, path, params, opts...)
}

// WithDefaults binds base options and a hook to the default Fetcher.
func WithDefaults(base dto.Options, hook ResponseHook) *Shorthand {
	return Default().WithDefaults(base, hook)
}

// SetDefaults replaces the defaults of the default Fetcher.
func SetDefaults(defaults dto.Options) {
	Default().SetDefaults(defaults)
}

// CurrentDefaults returns a copy of the default Fetcher's defaults.
func CurrentDefaults() dto.Options {
	return Default().CurrentDefaults()
}
