// Package s3files wraps the object store holding applicant document
// scans. Records keep storage paths, never URLs; a path is exchanged for
// a time-limited download URL on demand.
package s3files

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type Bucket struct {
	client        *s3.Client
	presignClient *s3.PresignClient
	bucket        string
	region        string
}

// NewBucket wraps the given bucket using an explicitly loaded AWS config.
func NewBucket(cfg aws.Config, bucket string) *Bucket {
	client := s3.NewFromConfig(cfg)
	return &Bucket{
		client:        client,
		presignClient: s3.NewPresignClient(client),
		bucket:        bucket,
		region:        cfg.Region,
	}
}

// PresignedURL exchanges a storage path for a download URL valid for the
// given duration. Each call stands alone; a failure here says nothing
// about other paths.
func (b *Bucket) PresignedURL(ctx context.Context, key string, duration time.Duration) (string, error) {
	req, err := b.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	}, s3.WithPresignExpires(duration))
	if err != nil {
		return "", fmt.Errorf("failed to presign object %s: %w", key, err)
	}
	return req.URL, nil
}

// Upload stores content under key and returns the object URL.
func (b *Bucket) Upload(ctx context.Context, content []byte, key string, mediaType string) (string, error) {
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &b.bucket,
		Key:         &key,
		Body:        bytes.NewReader(content),
		ContentType: &mediaType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}

	objectURL := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, key)

	return objectURL, nil
}

func (b *Bucket) Download(ctx context.Context, key string) ([]byte, error) {
	output, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download object: %w", err)
	}
	defer output.Body.Close()
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(output.Body); err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}
	return buf.Bytes(), nil
}

func (b *Bucket) Exists(ctx context.Context, key string) (bool, error) {
	_, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: &b.bucket,
		Key:    &key,
	})
	if err != nil {
		var responseError *awshttp.ResponseError
		if errors.As(err, &responseError) && responseError.ResponseError.HTTPStatusCode() == 404 {
			return false, nil
		}
		return false, fmt.Errorf("failed to check object existence: %w", err)
	}
	return true, nil
}
