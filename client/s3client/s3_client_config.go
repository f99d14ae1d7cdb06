package s3client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/andy-shea/ftchr/dto"
)

const TRANSPORT_S3 dto.TransportType = "ftchr.transport.s3"

type Middleware func(ctx context.Context, req *S3Request) error

// S3ClientConfig defines the static properties for an S3 transport instance.
type S3ClientConfig struct {
	Region         string
	Credentials    aws.CredentialsProvider
	Middlewares    []Middleware
	ForcePathStyle bool
	Endpoint       string // optional custom endpoint
	// Bucket is used for path style URLs such as /key. Without it the first
	// path segment names the bucket.
	Bucket string
}

func DefaultS3ClientConfig(region string) S3ClientConfig {
	return S3ClientConfig{Region: region, Middlewares: []Middleware{}}
}

func (c *S3ClientConfig) WithMiddleware(m ...Middleware) *S3ClientConfig {
	c.Middlewares = append(c.Middlewares, m...)
	return c
}

func (c *S3ClientConfig) WithCredentials(p aws.CredentialsProvider) *S3ClientConfig {
	c.Credentials = p
	return c
}

func (c *S3ClientConfig) WithEndpoint(endpoint string, forcePathStyle bool) *S3ClientConfig {
	c.Endpoint = endpoint
	c.ForcePathStyle = forcePathStyle
	return c
}

func (c *S3ClientConfig) WithBucket(bucket string) *S3ClientConfig {
	c.Bucket = bucket
	return c
}
