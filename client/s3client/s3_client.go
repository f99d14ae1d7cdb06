package s3client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/andy-shea/ftchr/dto"
)

// s3API This internal interface abstracts the s3 client for easier testing
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Client is a dto.Transport mapping fetch methods onto object operations:
// GET reads an object or lists a prefix, PUT and POST write, DELETE removes.
type S3Client struct {
	Info   dto.TransportInfo `json:"transport" yaml:"transport"`
	cfg    *S3ClientConfig
	client s3API
}

func NewS3Client(ctx context.Context, ref string, cfg *S3ClientConfig) (*S3Client, error) {
	if cfg == nil {
		def := DefaultS3ClientConfig("")
		cfg = &def
	}
	opts := []func(*config.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Credentials != nil {
		opts = append(opts, config.WithCredentialsProvider(cfg.Credentials))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.ForcePathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return newS3Client(ref, cfg, client), nil
}

func newS3Client(ref string, cfg *S3ClientConfig, client s3API) *S3Client {
	return &S3Client{
		cfg:    cfg,
		client: client,
		Info: dto.TransportInfo{
			Name:          "S3 Client",
			Ref:           ref,
			TransportType: TRANSPORT_S3,
			Description:   "Maps fetch methods onto S3 get, put, list and delete",
		},
	}
}

func (c *S3Client) Ref() string {
	return c.Info.Ref
}

func (c *S3Client) Type() dto.TransportType {
	return TRANSPORT_S3
}
