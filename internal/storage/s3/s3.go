package s3

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	jsoniter "github.com/json-iterator/go"

	"github.com/5w1tchy/isbn-books/internal/config"
	"github.com/5w1tchy/isbn-books/internal/models"
)

// S3Client writes book snapshots to one bucket.
type S3Client struct {
	Client    *s3.Client
	Presigner *s3.PresignClient
	Bucket    string
}

// NewClient builds a client for AWS or any S3-compatible endpoint. Static
// keys are used when both are set, otherwise the default credential chain.
func NewClient(ctx context.Context, c config.S3) (*S3Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(c.Region)}
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKeyID, c.SecretAccessKey, ""),
		))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
		o.UsePathStyle = c.UsePathStyle
		// many S3-compatible stores reject the newer default checksums
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	return &S3Client{
		Client:    client,
		Presigner: s3.NewPresignClient(client),
		Bucket:    c.Bucket,
	}, nil
}

// Snapshot is the object body written by PutSnapshot.
type Snapshot struct {
	TakenAt time.Time     `json:"taken_at"`
	Count   int           `json:"count"`
	Books   []models.Book `json:"books"`
}

// SnapshotKey is the default object key for a snapshot taken at t.
func SnapshotKey(t time.Time) string {
	return "snapshots/books-" + t.UTC().Format("20060102T150405Z") + ".json"
}

// PutSnapshot uploads books as one JSON object under key.
func (s *S3Client) PutSnapshot(ctx context.Context, key string, books []models.Book, takenAt time.Time) error {
	body, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(Snapshot{
		TakenAt: takenAt.UTC(),
		Count:   len(books),
		Books:   books,
	})
	if err != nil {
		return fmt.Errorf("s3: encode snapshot: %w", err)
	}
	_, err = s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("s3: put object %s: %w", key, err)
	}
	return nil
}

// PresignedDownloadURL creates a presigned GET URL for a snapshot.
func (s *S3Client) PresignedDownloadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}
	return req.URL, nil
}
