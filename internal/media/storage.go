package media

import (
	"context"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectStorage stores and removes raw file bytes.
type ObjectStorage interface {
	Put(context context.Context, key, contentType string, body io.Reader) error
	Delete(context context.Context, key string) error
}

// S3Storage stores objects in an S3-compatible bucket.
type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewS3Storage wraps an S3 client for one bucket. baseURL is the public
// CDN prefix assets are served from.
func NewS3Storage(client *s3.Client, bucket, baseURL string) *S3Storage {
	return &S3Storage{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (storage *S3Storage) Put(context context.Context, key, contentType string, body io.Reader) error {
	_, err := storage.client.PutObject(context, &s3.PutObjectInput{
		Bucket:      aws.String(storage.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	return err
}

func (storage *S3Storage) Delete(context context.Context, key string) error {
	_, err := storage.client.DeleteObject(context, &s3.DeleteObjectInput{
		Bucket: aws.String(storage.bucket),
		Key:    aws.String(key),
	})
	return err
}

// Healthcheck verifies the bucket is reachable with current credentials.
func (storage *S3Storage) Healthcheck(context context.Context) error {
	_, err := storage.client.HeadBucket(context, &s3.HeadBucketInput{
		Bucket: aws.String(storage.bucket),
	})
	return err
}

// PublicURL renders the CDN URL an uploaded key is served from.
func (storage *S3Storage) PublicURL(key string) string {
	return storage.baseURL + "/" + key
}
