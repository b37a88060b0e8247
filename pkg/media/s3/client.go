// File: pkg/media/s3/client.go
package s3

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"imgup/internal/config"
	"imgup/internal/provider/registry"
	"imgup/pkg/common"
	"imgup/pkg/media"

	awscfg "github.com/aws/aws-sdk-go-v2/config"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

func init() {
	registry.RegisterProvider(string(common.S3), registry.ProviderRegistration{
		ConfigCheck: isConfigured,
		Initializer: initialize,
		Validate:    validate,
	})
}

func validate(cfg *config.Config) error {
	return config.Validate("s3", cfg.S3)
}

// Checks that a bucket and region are set
func isConfigured(cfg *config.Config) bool {
	return validate(cfg) == nil
}

func initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (media.Uploader, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return NewS3Uploader(ctx, cfg.S3, logger)
}

// Subset of the S3 client used here
type s3API interface {
	HeadObject(ctx context.Context, in *awss3.HeadObjectInput, optFns ...func(*awss3.Options)) (*awss3.HeadObjectOutput, error)
	PutObject(ctx context.Context, in *awss3.PutObjectInput, optFns ...func(*awss3.Options)) (*awss3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *awss3.DeleteObjectInput, optFns ...func(*awss3.Options)) (*awss3.DeleteObjectOutput, error)
	HeadBucket(ctx context.Context, in *awss3.HeadBucketInput, optFns ...func(*awss3.Options)) (*awss3.HeadBucketOutput, error)
}

type S3Uploader struct {
	client    s3API
	bucket    string
	region    string
	prefix    string
	publicURL string
	logger    *slog.Logger

	openFile func(string) (io.ReadSeekCloser, error)
}

var _ media.Uploader = (*S3Uploader)(nil)

func NewS3Uploader(ctx context.Context, cfg config.S3Config, logger *slog.Logger) (*S3Uploader, error) {
	awsConfig, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return newS3Uploader(awss3.NewFromConfig(awsConfig), cfg, logger), nil
}

func newS3Uploader(client s3API, cfg config.S3Config, logger *slog.Logger) *S3Uploader {
	return &S3Uploader{
		client:    client,
		bucket:    cfg.Bucket,
		region:    cfg.Region,
		prefix:    cfg.Prefix,
		publicURL: cfg.PublicURL,
		logger:    logger,
		openFile: func(path string) (io.ReadSeekCloser, error) {
			return os.Open(path)
		},
	}
}

func (s *S3Uploader) ProviderName() common.Provider {
	return common.S3
}

func (s *S3Uploader) Close() error {
	return nil
}
