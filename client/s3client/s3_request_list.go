package s3client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/utils"
)

type objectListing struct {
	Bucket    string   `json:"bucket"`
	Prefix    string   `json:"prefix"`
	Keys      []string `json:"keys"`
	Truncated bool     `json:"truncated"`
}

func (c *S3Client) doList(ctx context.Context, r *S3Request) (*dto.Response, error) {
	out, err := c.client.ListObjectsV2(ctx, r.ListInput)
	if err != nil {
		return nil, fmt.Errorf("s3 list objects: %w", err)
	}

	listing := objectListing{
		Bucket:    r.Bucket,
		Prefix:    r.Prefix,
		Keys:      make([]string, 0, len(out.Contents)),
		Truncated: aws.ToBool(out.IsTruncated),
	}
	for _, obj := range out.Contents {
		listing.Keys = append(listing.Keys, aws.ToString(obj.Key))
	}
	body, err := dto.MarshalJSONNoEscape(listing)
	if err != nil {
		return nil, fmt.Errorf("encode listing: %w", err)
	}

	return &dto.Response{
		StatusCode: http.StatusOK,
		Body:       body,
		Headers:    utils.MapToHeader(map[string]string{dto.HEADER_CONTENT_TYPE: dto.MIME_JSON}),
		URL:        r.URI(),
	}, nil
}
