package s3client

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const HEADER_META_PREFIX = "X-Amz-Meta-"

// Finalize builds the deterministic AWS SDK input struct for the operation.
// Call this exactly once after middleware has run and before executing.
func (r *S3Request) Finalize() error {
	r.PutInput = nil
	r.GetInput = nil
	r.DeleteInput = nil
	r.ListInput = nil

	switch r.Operation {
	case OP_GET:
		r.GetInput = &s3.GetObjectInput{
			Bucket: aws.String(r.Bucket),
			Key:    aws.String(r.Key),
		}
		return nil

	case OP_PUT:
		in := &s3.PutObjectInput{
			Bucket: aws.String(r.Bucket),
			Key:    aws.String(r.Key),
			Body:   bytes.NewReader(r.Body),
		}
		if r.ContentType != "" {
			in.ContentType = aws.String(r.ContentType)
		}

		// X-Amz-Meta-* headers first, ExtraOpts["metadata"] wins per key
		md := map[string]string{}
		for k, v := range r.Headers {
			if name, ok := strings.CutPrefix(k, HEADER_META_PREFIX); ok && name != "" {
				md[strings.ToLower(name)] = v
			}
		}
		if extra, ok := extractStringMap(r.ExtraOpts, "metadata"); ok {
			for k, v := range extra {
				md[k] = v
			}
		}
		if len(md) > 0 {
			in.Metadata = md
		}

		cacheControl := r.Headers["Cache-Control"]
		if v, ok := r.ExtraOpts["cache_control"].(string); ok && v != "" {
			cacheControl = v
		}
		if cacheControl != "" {
			in.CacheControl = aws.String(cacheControl)
		}

		r.PutInput = in
		return nil

	case OP_DELETE:
		r.DeleteInput = &s3.DeleteObjectInput{
			Bucket: aws.String(r.Bucket),
			Key:    aws.String(r.Key),
		}
		return nil

	case OP_LIST:
		r.ListInput = &s3.ListObjectsV2Input{
			Bucket: aws.String(r.Bucket),
		}
		if r.Prefix != "" {
			r.ListInput.Prefix = aws.String(r.Prefix)
		}
		return nil

	default:
		return fmt.Errorf("unsupported s3 operation: %s", r.Operation)
	}
}

// extractStringMap reads extra[key] as either map[string]string or
// map[string]any with string values.
func extractStringMap(extra map[string]any, key string) (map[string]string, bool) {
	raw, ok := extra[key]
	if !ok || raw == nil {
		return nil, false
	}

	switch v := raw.(type) {
	case map[string]string:
		out := make(map[string]string, len(v))
		for k, s := range v {
			out[k] = s
		}
		return out, true

	case map[string]any:
		out := make(map[string]string, len(v))
		for k, val := range v {
			s, ok := val.(string)
			if !ok {
				continue
			}
			out[k] = s
		}
		return out, true

	default:
		return nil, false
	}
}
