// Package objectstore uploads files to any S3-compatible bucket (AWS S3,
// Cloudflare R2, the Supabase storage gateway).
package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kwucouncil/council-api/internal/domain/storage"
	"github.com/kwucouncil/council-api/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
)

var ErrTooLarge = errors.New("object exceeds upload limit")

type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
	UsePathStyle    bool
	MaxBytes        int64
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Uploader struct {
	client   putObjectAPI
	bucket   string
	baseURL  string
	maxBytes int64
	breaker  *resilience.CircuitBreaker
}

func NewS3Uploader(ctx context.Context, cfg Config, breaker *resilience.CircuitBreaker) (*S3Uploader, error) {
	if cfg.Bucket == "" || cfg.AccessKeyID == "" || cfg.SecretAccessKey == "" {
		return nil, fmt.Errorf("object storage bucket and credentials are required")
	}
	region := cfg.Region
	if region == "" {
		region = "auto"
	}

	sdkCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load object storage config: %w", err)
	}

	client := s3.NewFromConfig(sdkCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return newS3Uploader(client, cfg, breaker), nil
}

func newS3Uploader(client putObjectAPI, cfg Config, breaker *resilience.CircuitBreaker) *S3Uploader {
	return &S3Uploader{
		client:   client,
		bucket:   cfg.Bucket,
		baseURL:  publicBase(cfg),
		maxBytes: cfg.MaxBytes,
		breaker:  breaker,
	}
}

// Upload buffers the body so the SDK can sign a seekable payload, then puts
// it behind the circuit breaker.
func (u *S3Uploader) Upload(ctx context.Context, obj storage.Object) (string, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	body := obj.Body
	if u.maxBytes > 0 {
		body = io.LimitReader(obj.Body, u.maxBytes+1)
	}
	if _, err := buf.ReadFrom(body); err != nil {
		return "", fmt.Errorf("read upload body: %w", err)
	}
	if u.maxBytes > 0 && int64(buf.Len()) > u.maxBytes {
		return "", ErrTooLarge
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	err := u.breaker.Execute(ctx, func(ctx context.Context) error {
		_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:        aws.String(u.bucket),
			Key:           aws.String(obj.Key),
			Body:          strings.NewReader(buf.String()),
			ContentType:   aws.String(contentType),
			ContentLength: aws.Int64(int64(buf.Len())),
		})
		return err
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", obj.Key, err)
	}

	return u.PublicURL(obj.Key), nil
}

func (u *S3Uploader) PublicURL(key string) string {
	return u.baseURL + "/" + strings.TrimLeft(key, "/")
}

// publicBase falls back to a path-style URL on the endpoint when no public
// base is configured.
func publicBase(cfg Config) string {
	if cfg.PublicBaseURL != "" {
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	}
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint == "" {
		region := cfg.Region
		if region == "" || region == "auto" {
			region = "us-east-1"
		}
		endpoint = "https://s3." + region + ".amazonaws.com"
	}
	return endpoint + "/" + url.PathEscape(cfg.Bucket)
}
