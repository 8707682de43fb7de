package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-lost-found/internal/config"
	"github.com/MKhiriev/go-lost-found/internal/logger"
	"github.com/MKhiriev/go-lost-found/internal/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

type s3UploadStorage struct {
	client *s3.Client
	bucket string
	logger *logger.Logger
}

// NewS3UploadStorage returns an [UploadStorage] keeping files in an
// S3-compatible bucket. A custom endpoint (MinIO) switches the client to
// path-style addressing. Without static keys the default AWS credential
// chain is used.
func NewS3UploadStorage(ctx context.Context, cfg config.S3, log *logger.Logger) (UploadStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
	})

	log.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 upload storage")
	return &s3UploadStorage{client: client, bucket: cfg.Bucket, logger: log}, nil
}

func (s *s3UploadStorage) Save(ctx context.Context, originalName, contentType string, body io.Reader) (string, error) {
	name := utils.UniqueFilename(originalName)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3UploadStorage.Save").Msg("error putting object")
		return "", fmt.Errorf("error storing upload: %w", err)
	}

	return name, nil
}

func (s *s3UploadStorage) Open(ctx context.Context, filename string) (io.ReadCloser, error) {
	if !validFilename(filename) {
		return nil, ErrInvalidFilename
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*s3UploadStorage.Open").Msg("error getting object")
		return nil, fmt.Errorf("error opening upload: %w", err)
	}

	return out.Body, nil
}

// Delete removes the object. S3 reports success for missing keys as well.
func (s *s3UploadStorage) Delete(ctx context.Context, filename string) error {
	if !validFilename(filename) {
		return ErrInvalidFilename
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3UploadStorage.Delete").Msg("error deleting object")
		return fmt.Errorf("error deleting upload: %w", err)
	}

	return nil
}
