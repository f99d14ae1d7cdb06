package ftchr

import (
	"fmt"
	"sync"
	"sync/atomic"

	relayDTO "github.com/joy-dx/relay/dto"

	"github.com/andy-shea/ftchr/config"
	"github.com/andy-shea/ftchr/dto"
)

// Fetcher shapes requests, hands them to a Transport and normalizes what comes
// back. Each Fetcher owns its defaults registry and transport registry.
type Fetcher struct {
	cfg          *config.FetcherConfig
	relay        relayDTO.RelayInterface
	muTransports sync.RWMutex
	transports   map[string]dto.Transport
	defaults     *DefaultsRegistry
	requestState *requestState
	hydrated     atomic.Bool
}

func (f *Fetcher) RegisterTransport(ref string, transport dto.Transport) {
	f.muTransports.Lock()
	defer f.muTransports.Unlock()
	f.transports[ref] = transport
}

func (f *Fetcher) transport(ref string) (dto.Transport, error) {
	if ref == "" {
		ref = dto.DEFAULT_TRANSPORT_REF
	}
	f.muTransports.RLock()
	defer f.muTransports.RUnlock()
	t, ok := f.transports[ref]
	if !ok {
		return nil, fmt.Errorf("transport %q not registered", ref)
	}
	return t, nil
}

// Defaults exposes the registry the fetcher reads at the start of every dispatch.
func (f *Fetcher) Defaults() *DefaultsRegistry {
	return f.defaults
}

// SetDefaults replaces the fetcher's defaults for all later dispatches.
func (f *Fetcher) SetDefaults(defaults dto.Options) {
	f.defaults.Set(defaults)
}

// CurrentDefaults returns a copy of the defaults a dispatch started now would use.
func (f *Fetcher) CurrentDefaults() dto.Options {
	return f.defaults.Snapshot()
}
