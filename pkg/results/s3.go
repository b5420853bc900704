package results

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Uploader pushes exported result files to S3 for archival.
type Uploader struct {
	client *s3.Client
}

// NewUploader creates an uploader using the default AWS configuration
// (environment, shared config, instance role).
func NewUploader(ctx context.Context) (*Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return &Uploader{client: s3.NewFromConfig(cfg)}, nil
}

// NewUploaderWithClient wires a preconfigured client (useful for testing).
func NewUploaderWithClient(client *s3.Client) *Uploader {
	return &Uploader{client: client}
}

// ParseS3URL splits an s3://bucket/key URL into its parts.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("parse %q: %w", raw, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("not an s3://bucket/key URL: %q", raw)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", "", fmt.Errorf("missing object key in %q", raw)
	}
	return u.Host, key, nil
}

// UploadFile puts the local file at path under s3://bucket/key.
func (u *Uploader) UploadFile(ctx context.Context, path, bucket, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err != nil {
		return fmt.Errorf("put s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}
