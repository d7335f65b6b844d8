package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Signer issues time-limited storage credentials and deletes objects. The S3
// implementation is the only real one; tests substitute their own.
type Signer interface {
	PresignPut(ctx context.Context, key, contentType string) (string, error)
	PresignGet(ctx context.Context, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
	Check(ctx context.Context) error
}

// seams for unit tests
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

type S3Signer struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	uploadTTL time.Duration
	viewTTL   time.Duration
}

// endpointURL accepts both bare hosts and scheme-prefixed endpoints, like
// the URL resolver does.
func endpointURL(config Config) string {
	if strings.Contains(config.APIEndpoint, "://") {
		return config.APIEndpoint
	}
	scheme := "https"
	if !config.UseSSL {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s", scheme, config.APIEndpoint)
}

func NewS3Signer(config Config) (*S3Signer, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(config.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(config.AccessKey, config.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpointURL(config))
		// MinIO requires path-style addressing
		o.UsePathStyle = true
	})

	return &S3Signer{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    config.Bucket,
		uploadTTL: time.Duration(config.PresignUploadTTLSec) * time.Second,
		viewTTL:   time.Duration(config.PresignViewTTLSec) * time.Second,
	}, nil
}

func (s *S3Signer) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	req, err := presignPutObject(s.presigner, ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		ContentType: &contentType,
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.uploadTTL
	})
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

func (s *S3Signer) PresignGet(ctx context.Context, key string) (string, error) {
	req, err := presignGetObject(s.presigner, ctx, &s3.GetObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.viewTTL
	})
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Check verifies the bucket is reachable.
func (s *S3Signer) Check(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: &s.bucket,
	})
	return err
}

func (s *S3Signer) DeleteObject(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	return err
}

var _ Signer = (*S3Signer)(nil)
