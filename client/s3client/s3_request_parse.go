package s3client

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/andy-shea/ftchr/dto"
	"github.com/andy-shea/ftchr/utils"
)

const (
	OP_GET    = "get"
	OP_PUT    = "put"
	OP_DELETE = "delete"
	OP_LIST   = "list"
)

var (
	ErrMissingBucket = errors.New("missing bucket")
	ErrMissingKey    = errors.New("missing object key")
)

type S3Request struct {
	Method    dto.Method
	Operation string // empty when the method has no object operation
	Bucket    string
	Key       string

	Body        []byte
	Prefix      string
	ContentType string

	ExtraOpts map[string]any
	Headers   map[string]string

	// Deterministic prepared AWS inputs (built after middleware)
	PutInput    *s3.PutObjectInput
	GetInput    *s3.GetObjectInput
	DeleteInput *s3.DeleteObjectInput
	ListInput   *s3.ListObjectsV2Input
}

// URI renders the object location as s3://bucket/key.
func (r *S3Request) URI() string {
	return "s3://" + r.Bucket + "/" + r.Key
}

// newS3Request resolves the object addressed by in.URL. Both s3://bucket/key
// and /bucket/key are accepted; with a default bucket the whole path is the
// key. GET on an empty key or one ending in / lists that prefix.
func newS3Request(in *dto.Request, defaultBucket string) (*S3Request, error) {
	u, err := url.Parse(in.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	r := &S3Request{
		Method:    in.Method,
		ExtraOpts: map[string]any{},
		Headers:   make(map[string]string, len(in.Headers)),
	}
	for k, v := range in.Headers {
		r.Headers[http.CanonicalHeaderKey(k)] = v
	}

	path := strings.TrimPrefix(u.Path, "/")
	switch {
	case u.Scheme == "s3":
		r.Bucket, r.Key = u.Host, path
	case defaultBucket != "":
		r.Bucket, r.Key = defaultBucket, path
	default:
		r.Bucket, r.Key, _ = strings.Cut(path, "/")
	}
	if r.Bucket == "" {
		return nil, fmt.Errorf("%w in %q", ErrMissingBucket, in.URL)
	}

	switch in.Method {
	case dto.GET:
		if r.Key == "" || strings.HasSuffix(r.Key, "/") {
			r.Operation = OP_LIST
			r.Prefix = r.Key
			if p := u.Query().Get("prefix"); p != "" {
				r.Prefix = p
			}
			return r, nil
		}
		r.Operation = OP_GET
	case dto.PUT, dto.POST:
		r.Operation = OP_PUT
		body, err := utils.BodyBytes(in.Body)
		if err != nil {
			return nil, err
		}
		r.Body = body
		r.ContentType = r.Headers[dto.HEADER_CONTENT_TYPE]
	case dto.DELETE:
		r.Operation = OP_DELETE
	default:
		return r, nil
	}
	if r.Key == "" {
		return nil, fmt.Errorf("%w in %q", ErrMissingKey, in.URL)
	}
	return r, nil
}
