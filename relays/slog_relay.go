package relays

import (
	"context"
	"log/slog"
	"os"

	relayDTO "github.com/joy-dx/relay/dto"
)

// SlogRelay forwards relay events to a slog.Logger. Meta events are logged at
// debug level with a meta marker; Fatal logs at error level and exits.
type SlogRelay struct {
	logger *slog.Logger
	exit   func(code int)
}

func NewSlogRelay(logger *slog.Logger) *SlogRelay {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogRelay{logger: logger, exit: os.Exit}
}

func (r *SlogRelay) Debug(data relayDTO.RelayEventInterface) { r.log(slog.LevelDebug, data) }
func (r *SlogRelay) Info(data relayDTO.RelayEventInterface)  { r.log(slog.LevelInfo, data) }
func (r *SlogRelay) Warn(data relayDTO.RelayEventInterface)  { r.log(slog.LevelWarn, data) }
func (r *SlogRelay) Error(data relayDTO.RelayEventInterface) { r.log(slog.LevelError, data) }

func (r *SlogRelay) Fatal(data relayDTO.RelayEventInterface) {
	r.log(slog.LevelError, data)
	r.exit(1)
}

func (r *SlogRelay) Meta(data relayDTO.RelayEventInterface) {
	if data == nil {
		return
	}
	attrs := append(data.ToSlog(), slog.Bool("meta", true))
	r.logger.LogAttrs(context.Background(), slog.LevelDebug, data.Message(), attrs...)
}

func (r *SlogRelay) log(level slog.Level, data relayDTO.RelayEventInterface) {
	if data == nil {
		return
	}
	attrs := append(data.ToSlog(), slog.String("event", string(data.RelayType())))
	r.logger.LogAttrs(context.Background(), level, data.Message(), attrs...)
}
