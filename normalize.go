package ftchr

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/andy-shea/ftchr/dto"
)

// IsJSON reports whether the response declares a JSON body.
func IsJSON(raw dto.RawResponse) bool {
	ct := strings.ToLower(raw.Header(dto.HEADER_CONTENT_TYPE))
	return strings.Contains(ct, dto.MIME_JSON)
}

// Normalize turns a raw transport response into a Result or a typed error.
//
// A 204 resolves without reading the body. A JSON body is decoded before the
// status is judged, so a body that fails to decode is a *dto.DecodeError even
// on an error status. A context that ends while the body is read returns the
// bare context error instead. Any status >= 400 is a *dto.HTTPStatusError
// carrying the decoded contents, nil for non JSON bodies.
func Normalize(ctx context.Context, raw dto.RawResponse) (*dto.Result, error) {
	if raw == nil {
		return nil, dto.ErrNilResponse
	}

	status := raw.Status()
	if status == http.StatusNoContent {
		return &dto.Result{Data: map[string]any{}, Response: raw}, nil
	}

	var contents any
	if IsJSON(raw) {
		decoded, err := raw.JSON(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			text, _ := raw.Text(ctx)
			return nil, &dto.DecodeError{
				StatusCode: status,
				Body:       text,
				Response:   raw,
				Err:        err,
			}
		}
		contents = decoded
	}

	if status >= http.StatusBadRequest {
		return nil, &dto.HTTPStatusError{
			StatusCode: status,
			Contents:   contents,
			Response:   raw,
		}
	}

	return &dto.Result{
		Data:     dataOf(contents),
		Contents: contents,
		Response: raw,
	}, nil
}

func dataOf(contents any) map[string]any {
	switch v := contents.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		return v
	default:
		return map[string]any{"contents": v}
	}
}
