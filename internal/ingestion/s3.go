package ingestion

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configures access to S3 or an S3-compatible store such as R2.
type S3Options struct {
	// Endpoint overrides the service endpoint, e.g. https://<account>.r2.cloudflarestorage.com.
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// S3Fetcher downloads objects from a bucket.
type S3Fetcher struct {
	client *s3.Client
}

// NewS3Fetcher builds a client from the default AWS credential chain, or from
// static keys when both are set.
func NewS3Fetcher(ctx context.Context, opts S3Options) (*S3Fetcher, error) {
	var loadOpts []func(*config.LoadOptions) error
	if opts.Region != "" {
		loadOpts = append(loadOpts, config.WithRegion(opts.Region))
	}
	if opts.AccessKey != "" && opts.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Fetcher{client: client}, nil
}

// Fetch downloads bucket/key, failing if the object exceeds maxBytes.
func (f *S3Fetcher) Fetch(ctx context.Context, bucket, key string, maxBytes int64) ([]byte, error) {
	out, err := f.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer out.Body.Close()

	data, err := readLimited(out.Body, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return data, nil
}

// ParseS3Location splits s3://bucket/key into its bucket and key.
func ParseS3Location(location string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(location, "s3://")
	if !ok {
		return "", "", &InvalidInputError{Name: location, Message: "not an s3:// location"}
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return "", "", &InvalidInputError{Name: location, Message: "expected s3://bucket/key"}
	}
	return bucket, key, nil
}
