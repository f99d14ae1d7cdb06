package s3client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/aws/smithy-go"

	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/utils"
)

// Do runs the object operation addressed by req. Missing objects and denied
// access come back as 404 and 403 responses; every other SDK failure is a
// transport error.
func (c *S3Client) Do(ctx context.Context, in *dto.Request) (dto.RawResponse, error) {
	if in == nil {
		return nil, errors.New("nil request provided")
	}
	r, err := newS3Request(in, c.cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if r.Operation == "" {
		return errorResponse(r, http.StatusMethodNotAllowed, "MethodNotAllowed",
			fmt.Sprintf("method %s is not supported by the s3 transport", r.Method)), nil
	}

	for _, mw := range c.cfg.Middlewares {
		if err := mw(ctx, r); err != nil {
			return nil, fmt.Errorf("middleware aborted: %w", err)
		}
	}

	if err := r.Finalize(); err != nil {
		return nil, err
	}

	var resp *dto.Response
	switch r.Operation {
	case OP_GET:
		resp, err = c.doGet(ctx, r)
	case OP_PUT:
		resp, err = c.doPut(ctx, r)
	case OP_DELETE:
		resp, err = c.doDelete(ctx, r)
	case OP_LIST:
		resp, err = c.doList(ctx, r)
	default:
		return nil, fmt.Errorf("unsupported s3 operation: %s", r.Operation)
	}
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			if status := statusForCode(apiErr.ErrorCode()); status != 0 {
				return errorResponse(r, status, apiErr.ErrorCode(), apiErr.ErrorMessage()), nil
			}
		}
		return nil, err
	}
	return resp, nil
}

func statusForCode(code string) int {
	switch code {
	case "NoSuchKey", "NoSuchBucket", "NotFound":
		return http.StatusNotFound
	case "AccessDenied", "Forbidden":
		return http.StatusForbidden
	}
	return 0
}

func errorResponse(r *S3Request, status int, code, message string) *dto.Response {
	if message == "" {
		message = http.StatusText(status)
	}
	// string values always marshal
	body, _ := dto.MarshalJSONNoEscape(map[string]string{"code": code, "message": message})
	return &dto.Response{
		StatusCode: status,
		Headers:    utils.MapToHeader(map[string]string{dto.HEADER_CONTENT_TYPE: dto.MIME_JSON}),
		Body:       body,
		URL:        r.URI(),
	}
}
