package s3client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/andy-shea/ftchr/dto"
)

func (c *S3Client) doPut(ctx context.Context, r *S3Request) (*dto.Response, error) {
	out, err := c.client.PutObject(ctx, r.PutInput)
	if err != nil {
		return nil, fmt.Errorf("s3 put object: %w", err)
	}
	headers := http.Header{}
	if etag := aws.ToString(out.ETag); etag != "" {
		headers.Set("ETag", etag)
	}
	return &dto.Response{StatusCode: http.StatusNoContent, Headers: headers, URL: r.URI()}, nil
}
