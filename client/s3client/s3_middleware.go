package s3client

import (
	"context"
	"fmt"
	"strings"

	relayDTO "github.com/joy-dx/relay/dto"

	"github.com/andy-shea/ftchr/relays"
)

// StaticS3MetaMiddleware adds default metadata to each S3 put operation.
// Metadata already present on the request wins.
func StaticS3MetaMiddleware(meta map[string]string) Middleware {
	return func(ctx context.Context, r *S3Request) error {
		if r.Operation != OP_PUT {
			return nil
		}
		if r.ExtraOpts == nil {
			r.ExtraOpts = map[string]any{}
		}

		md, _ := r.ExtraOpts["metadata"].(map[string]string)
		if md == nil {
			md = make(map[string]string, len(meta))
		}
		for k, v := range meta {
			if _, ok := md[k]; !ok {
				md[k] = v
			}
		}

		r.ExtraOpts["metadata"] = md
		return nil
	}
}

func LoggingMiddleware(relay relayDTO.RelayInterface) Middleware {
	return func(ctx context.Context, r *S3Request) error {
		relay.Debug(relays.RlyTransportLog{
			TransportRef: string(TRANSPORT_S3),
			Method:       r.Method,
			URL:          r.URI(),
			Msg:          fmt.Sprintf("[S3] %s %s", strings.ToUpper(r.Operation), r.URI()),
		})
		return nil
	}
}
