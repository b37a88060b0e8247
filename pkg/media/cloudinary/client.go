// File: pkg/media/cloudinary/client.go
package cloudinary

import (
	"context"
	"fmt"
	"log/slog"

	"imgup/internal/config"
	"imgup/internal/provider/registry"
	"imgup/pkg/common"
	"imgup/pkg/media"

	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func init() {
	registry.RegisterProvider(string(common.Cloudinary), registry.ProviderRegistration{
		ConfigCheck: isConfigured,
		Initializer: initialize,
		Validate:    validate,
	})
}

func validate(cfg *config.Config) error {
	return config.Validate("cloudinary", cfg.Cloudinary)
}

// Checks that the cloud name and both API credentials are set
func isConfigured(cfg *config.Config) bool {
	return validate(cfg) == nil
}

// Initializes the Cloudinary client from the configuration
func initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (media.Uploader, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return NewCloudinaryUploader(cfg.Cloudinary, logger)
}

// Subset of the SDK upload API used here
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

type adminAPI interface {
	Ping(ctx context.Context) (*admin.PingResult, error)
}

type CloudinaryUploader struct {
	upload    uploadAPI
	admin     adminAPI
	cloudName string
	logger    *slog.Logger
}

var _ media.Uploader = (*CloudinaryUploader)(nil)

func NewCloudinaryUploader(cfg config.CloudinaryConfig, logger *slog.Logger) (*CloudinaryUploader, error) {
	client, err := cld.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create Cloudinary client: %w", err)
	}

	return &CloudinaryUploader{
		upload:    &client.Upload,
		admin:     &client.Admin,
		cloudName: cfg.CloudName,
		logger:    logger,
	}, nil
}

func (c *CloudinaryUploader) ProviderName() common.Provider {
	return common.Cloudinary
}

// Nothing to close, the SDK uses a shared HTTP client
func (c *CloudinaryUploader) Close() error {
	return nil
}
