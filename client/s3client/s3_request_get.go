package s3client

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/utils"
)

func (c *S3Client) doGet(ctx context.Context, r *S3Request) (*dto.Response, error) {
	out, err := c.client.GetObject(ctx, r.GetInput)
	if err != nil {
		return nil, fmt.Errorf("s3 get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read s3 object: %w", err)
	}

	headers := make(map[string]string, len(out.Metadata)+3)
	for k, v := range out.Metadata {
		headers[HEADER_META_PREFIX+k] = v
	}
	if ct := aws.ToString(out.ContentType); ct != "" {
		headers[dto.HEADER_CONTENT_TYPE] = ct
	}
	if etag := aws.ToString(out.ETag); etag != "" {
		headers["ETag"] = etag
	}
	if cc := aws.ToString(out.CacheControl); cc != "" {
		headers["Cache-Control"] = cc
	}

	return &dto.Response{
		StatusCode: http.StatusOK,
		Body:       data,
		Headers:    utils.MapToHeader(headers),
		URL:        r.URI(),
	}, nil
}
