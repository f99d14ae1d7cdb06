package s3client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/andy-shea/ftchr/dto"
)

func (c *S3Client) doDelete(ctx context.Context, r *S3Request) (*dto.Response, error) {
	_, err := c.client.DeleteObject(ctx, r.DeleteInput)
	if err != nil {
		return nil, fmt.Errorf("s3 delete object: %w", err)
	}
	return &dto.Response{StatusCode: http.StatusNoContent, Headers: http.Header{}, URL: r.URI()}, nil
}
