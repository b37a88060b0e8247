// File: pkg/media/gcs/client.go
package gcs

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

	gcpstorage "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

func init() {
	registry.RegisterProvider(string(common.GCS), registry.ProviderRegistration{
		ConfigCheck: isConfigured,
		Initializer: initialize,
		Validate:    validate,
	})
}

func validate(cfg *config.Config) error {
	return config.Validate("gcs", cfg.GCS)
}

// Checks that the target bucket is set; credentials fall back to the ambient defaults
func isConfigured(cfg *config.Config) bool {
	return validate(cfg) == nil
}

func initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (media.Uploader, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return NewGCSUploader(ctx, cfg.GCS, logger)
}

type GCSUploader struct {
	store     objectStore
	bucket    string
	prefix    string
	publicURL string
	logger    *slog.Logger

	openFile func(string) (io.ReadSeekCloser, error)
}

var _ media.Uploader = (*GCSUploader)(nil)

func NewGCSUploader(ctx context.Context, cfg config.GCSConfig, logger *slog.Logger) (*GCSUploader, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	client, err := gcpstorage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return newGCSUploader(&sdkStore{client: client}, cfg, logger), nil
}

func newGCSUploader(store objectStore, cfg config.GCSConfig, logger *slog.Logger) *GCSUploader {
	return &GCSUploader{
		store:     store,
		bucket:    cfg.Bucket,
		prefix:    cfg.Prefix,
		publicURL: cfg.PublicURL,
		logger:    logger,
		openFile: func(path string) (io.ReadSeekCloser, error) {
			return os.Open(path)
		},
	}
}

func (g *GCSUploader) ProviderName() common.Provider {
	return common.GCS
}

func (g *GCSUploader) Close() error {
	return g.store.Close()
}
