package relays

import (
	"fmt"
	"log/slog"
	"time"

	relayDTO "github.com/joy-dx/relay/dto"

	"github.com/andy-shea/ftchr/dto"
)

const (
	FETCH_CHANNEL relayDTO.EventChannel = "ftchr"

	FETCH_LOG     relayDTO.EventRef = "ftchr.log"
	FETCH_REQUEST relayDTO.EventRef = "ftchr.request"
	TRANSPORT_LOG relayDTO.EventRef = "ftchr.transport.log"
)

// RlyFetchLog is a free form message from the fetcher.
type RlyFetchLog struct {
	Msg string
}

func (e RlyFetchLog) RelayChannel() relayDTO.EventChannel { return FETCH_CHANNEL }
func (e RlyFetchLog) RelayType() relayDTO.EventRef        { return FETCH_LOG }
func (e RlyFetchLog) Message() string                     { return e.Msg }
func (e RlyFetchLog) ToSlog() []slog.Attr {
	return []slog.Attr{slog.String("channel", string(FETCH_CHANNEL))}
}

// RlyFetchRequest reports the outcome of a single dispatch.
type RlyFetchRequest struct {
	Notification dto.RequestNotification
	TransportRef string
}

func (e RlyFetchRequest) RelayChannel() relayDTO.EventChannel { return FETCH_CHANNEL }
func (e RlyFetchRequest) RelayType() relayDTO.EventRef        { return FETCH_REQUEST }

func (e RlyFetchRequest) Message() string {
	n := e.Notification
	if n.Kind != "" {
		return fmt.Sprintf("%s %s failed (%s): %s", n.Method, n.URL, n.Kind, n.Message)
	}
	return fmt.Sprintf("%s %s -> %d", n.Method, n.URL, n.StatusCode)
}

func (e RlyFetchRequest) ToSlog() []slog.Attr {
	n := e.Notification
	attrs := []slog.Attr{
		slog.String("channel", string(FETCH_CHANNEL)),
		slog.String("method", string(n.Method)),
		slog.String("url", n.URL),
		slog.String("transport", e.TransportRef),
		slog.Duration("duration", n.Duration),
	}
	if n.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status_code", n.StatusCode))
	}
	if n.Kind != "" {
		attrs = append(attrs, slog.String("error_kind", string(n.Kind)))
	}
	return attrs
}

// RlyTransportLog is emitted by transports and their middlewares.
type RlyTransportLog struct {
	TransportRef string
	Method       dto.Method
	URL          string
	StatusCode   int
	Duration     time.Duration
	Msg          string
}

func (e RlyTransportLog) RelayChannel() relayDTO.EventChannel { return FETCH_CHANNEL }
func (e RlyTransportLog) RelayType() relayDTO.EventRef        { return TRANSPORT_LOG }
func (e RlyTransportLog) Message() string                     { return e.Msg }
func (e RlyTransportLog) ToSlog() []slog.Attr {
	attrs := []slog.Attr{
		slog.String("channel", string(FETCH_CHANNEL)),
		slog.String("transport", e.TransportRef),
	}
	if e.Method != "" {
		attrs = append(attrs, slog.String("method", string(e.Method)))
	}
	if e.URL != "" {
		attrs = append(attrs, slog.String("url", e.URL))
	}
	if e.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status_code", e.StatusCode))
	}
	if e.Duration > 0 {
		attrs = append(attrs, slog.Duration("duration", e.Duration))
	}
	return attrs
}
