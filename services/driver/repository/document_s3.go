package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/piresc/ojekdriver/internal/pkg/models"
	"github.com/piresc/ojekdriver/services/driver"
)

// putObjectAPI is the part of the S3 client the store uses
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3DocumentStore uploads verification documents to an S3-compatible bucket
type S3DocumentStore struct {
	client putObjectAPI
	bucket string
	prefix string
	now    func() time.Time
}

var _ driver.DocumentStore = (*S3DocumentStore)(nil)

// NewS3DocumentStore creates a store using the default AWS credential chain
func NewS3DocumentStore(ctx context.Context, cfg models.StorageConfig) (*S3DocumentStore, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return newS3DocumentStore(client, cfg.Bucket, cfg.Prefix), nil
}

func newS3DocumentStore(client putObjectAPI, bucket, prefix string) *S3DocumentStore {
	return &S3DocumentStore{client: client, bucket: bucket, prefix: prefix, now: time.Now}
}

// Put uploads the document and returns its object key
func (s *S3DocumentStore) Put(ctx context.Context, driverID string, kind models.DocumentKind, upload *models.DocumentUpload) (string, error) {
	name := path.Base(upload.FileName)
	if name == "." || name == "/" {
		name = string(kind)
	}
	key := path.Join(s.prefix, driverID, string(kind), fmt.Sprintf("%d-%s", s.now().Unix(), name))

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(upload.Content),
		ContentLength: aws.Int64(int64(len(upload.Content))),
		ContentType:   aws.String(contentType),
		Metadata: map[string]string{
			"driver-id":     driverID,
			"document-kind": string(kind),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}
	return key, nil
}
