// Package images turns inline image payloads into durably hosted objects on
// an S3-compatible backend and returns stable, publicly readable URLs.
package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrijs2005/adventures/internal/common"
	"github.com/dmitrijs2005/adventures/internal/imagex"
	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Indirections over the AWS SDK so tests can substitute fakes without
// process-wide state.
var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	createBucket = func(ctx context.Context, c *s3.Client, in *s3.CreateBucketInput) (*s3.CreateBucketOutput, error) {
		return c.CreateBucket(ctx, in)
	}
	putObject = func(ctx context.Context, c *s3.Client, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
	deleteObject = func(ctx context.Context, c *s3.Client, in *s3.DeleteObjectInput) (*s3.DeleteObjectOutput, error) {
		return c.DeleteObject(ctx, in)
	}
)

var nameSanitizeRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Config holds the object storage settings for the image service.
type Config struct {
	AccessKey    string
	SecretKey    string
	Bucket       string
	Region       string
	BaseEndpoint string
}

// S3Service stores decoded image bytes as public-read objects. The client
// is created lazily on first use and reused; a failed initialization is
// retried on the next call.
type S3Service struct {
	cfg Config

	mu     sync.Mutex
	client *s3.Client
}

// NewS3Service returns a service for the given storage settings. No
// connection is made here.
func NewS3Service(cfg Config) *S3Service {
	return &S3Service{cfg: cfg}
}

func (s *S3Service) configured() bool {
	if s.cfg.BaseEndpoint == "" || s.cfg.AccessKey == "" {
		return false
	}
	return !strings.Contains(s.cfg.BaseEndpoint, "<your-") && !strings.Contains(s.cfg.AccessKey, "<your-")
}

// getClient initializes the S3 client and provisions the bucket if absent.
// Bucket creation is idempotent: an already-existing bucket is not an error.
func (s *S3Service) getClient(ctx context.Context) (*s3.Client, error) {
	if !s.configured() {
		return nil, fmt.Errorf("%w: blob storage not configured", common.ErrBackendUnavailable)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.AccessKey,
			s.cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
		o.UsePathStyle = true
	})

	if _, err := createBucket(ctx, client, &s3.CreateBucketInput{
		Bucket: aws.String(s.cfg.Bucket),
	}); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if !errors.As(err, &owned) && !errors.As(err, &exists) {
			return nil, fmt.Errorf("%w: %v", common.ErrBackendUnavailable, err)
		}
	}

	s.client = client
	return s.client, nil
}

// Upload decodes an inline payload and stores it under a globally unique
// name, returning the object's URL. The payload must match the
// "data:<type>;base64,<data>" format.
func (s *S3Service) Upload(ctx context.Context, payload string, suggestedName string) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	contentType, data, err := imagex.ParseInline(payload)
	if err != nil {
		return "", err
	}

	name := objectName(suggestedName, contentType)

	if _, err := putObject(ctx, client, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(name),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		ACL:         types.ObjectCannedACLPublicRead,
	}); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return s.objectURL(name), nil
}

// Delete removes the object a previously returned URL points at. Deleting
// an object that is already gone is not an error.
func (s *S3Service) Delete(ctx context.Context, ref string) error {
	client, err := s.getClient(ctx)
	if err != nil {
		return err
	}

	u, err := url.Parse(ref)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return fmt.Errorf("%w: no object name in url", common.ErrValidation)
	}

	if _, err := deleteObject(ctx, client, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(name),
	}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}

	return nil
}

func (s *S3Service) objectURL(name string) string {
	return strings.TrimSuffix(s.cfg.BaseEndpoint, "/") + "/" + s.cfg.Bucket + "/" + name
}

// objectName builds a collision-free storage name: random id, sanitized
// suggested name, extension derived from the content type.
func objectName(suggestedName, contentType string) string {
	if suggestedName == "" {
		suggestedName = "image"
	}
	suggestedName = nameSanitizeRe.ReplaceAllString(suggestedName, "-")
	return fmt.Sprintf("%s-%s.%s", uuid.New(), suggestedName, imagex.Extension(contentType))
}
