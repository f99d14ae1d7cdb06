package ftchr

import (
	"context"
	"errors"

	"github.com/andy-shea/ftchr/client/httpclient"
	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/relays"
)

func (f *Fetcher) State() *dto.FetchState {
	f.muTransports.RLock()
	transports := make(map[string]dto.TransportType, len(f.transports))
	for ref, t := range f.transports {
		transports[ref] = t.Type()
	}
	f.muTransports.RUnlock()

	return &dto.FetchState{
		BaseURL:          f.cfg.BaseURL,
		ExtraHeaders:     f.cfg.ExtraHeaders,
		RequestTimeout:   f.cfg.RequestTimeout,
		UserAgent:        f.cfg.UserAgent,
		BlacklistDomains: f.cfg.BlacklistDomains,
		WhitelistDomains: f.cfg.WhitelistDomains,
		Defaults:         f.defaults.Snapshot(),
		Transports:       transports,
		Requests:         f.requestState.GetAll(),
	}
}

// Hydrate registers the default HTTP transport unless one is already
// registered under dto.DEFAULT_TRANSPORT_REF.
func (f *Fetcher) Hydrate(ctx context.Context) error {
	if f.cfg == nil {
		return errors.New("no fetcher config")
	}
	if f.relay == nil {
		return errors.New("no relay implementation")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := f.transport(dto.DEFAULT_TRANSPORT_REF); err == nil {
		f.hydrated.Store(true)
		return nil
	}

	defaultClientCfg := httpclient.DefaultHTTPClientConfig()
	defaultClient := httpclient.NewHTTPClient(dto.DEFAULT_TRANSPORT_REF, f.cfg, &defaultClientCfg)
	f.RegisterTransport(dto.DEFAULT_TRANSPORT_REF, defaultClient)
	f.hydrated.Store(true)
	f.relay.Debug(relays.RlyFetchLog{Msg: "Default HTTP transport registered"})

	return nil
}
