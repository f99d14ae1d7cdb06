package ftchr

import (
	"sync"

	"github.com/andy-shea/ftchr/config"
	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/relays"
)

var (
	service     *Fetcher
	serviceOnce sync.Once
)

// ProvideFetcher returns the process wide Fetcher, building it from cfg on the
// first call. Later calls ignore cfg.
func ProvideFetcher(cfg *config.FetcherConfig) *Fetcher {
	serviceOnce.Do(func() {
		service = NewFetcher(cfg)
	})
	return service
}

// NewFetcher builds an independent Fetcher. Call Hydrate to register the
// default HTTP transport.
func NewFetcher(cfg *config.FetcherConfig) *Fetcher {
	if cfg == nil {
		def := config.DefaultFetcherConfig()
		cfg = &def
	}
	if cfg.Executor == nil {
		cfg.WithExecutor(dto.GoroutineExecutor)
	}
	f := &Fetcher{
		cfg:          cfg,
		relay:        cfg.Relay(),
		transports:   make(map[string]dto.Transport),
		defaults:     NewDefaultsRegistry(cfg.Defaults),
		requestState: newRequestState(cfg.RequestStateLimit),
	}
	cfg.Relay().Debug(relays.RlyFetchLog{Msg: "Fetcher started"})
	return f
}
