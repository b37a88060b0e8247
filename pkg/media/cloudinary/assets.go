// File: pkg/media/cloudinary/assets.go
package cloudinary

import (
	"context"
	"errors"
	"fmt"

	"imgup/pkg/common"
	"imgup/pkg/media"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const defaultDeleteResourceType = "image"

func (c *CloudinaryUploader) Upload(ctx context.Context, path string, opts media.UploadOptions) (media.Asset, error) {
	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = media.ResourceTypeAuto
	}

	c.logger.Debug("Starting Cloudinary Upload operation", "path", path, "resource_type", resourceType, "folder", opts.Folder)

	params := uploader.UploadParams{
		ResourceType: resourceType,
		Folder:       opts.Folder,
	}
	if len(opts.Tags) > 0 {
		params.Tags = api.CldAPIArray(opts.Tags)
	}

	result, err := c.upload.Upload(ctx, path, params)
	if err != nil {
		return media.Asset{}, err
	}
	if result == nil {
		return media.Asset{}, errors.New("empty response from Cloudinary")
	}
	// API failures arrive as a populated error body rather than a Go error
	if result.Error.Message != "" {
		return media.Asset{}, errors.New(result.Error.Message)
	}

	return mapUploadResult(result), nil
}

func (c *CloudinaryUploader) Delete(ctx context.Context, publicID string, opts media.DeleteOptions) error {
	resourceType := opts.ResourceType
	if resourceType == "" {
		resourceType = defaultDeleteResourceType
	}

	c.logger.Debug("Starting Cloudinary Delete operation", "public_id", publicID, "resource_type", resourceType)

	result, err := c.upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     publicID,
		ResourceType: resourceType,
	})
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", publicID, err)
	}
	if result == nil {
		return fmt.Errorf("failed to delete asset %s: empty response from Cloudinary", publicID)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("failed to delete asset %s: %s", publicID, result.Error.Message)
	}
	// Destroy answers "not found" with a normal response
	if result.Result != "ok" {
		return fmt.Errorf("failed to delete asset %s: %s", publicID, result.Result)
	}
	return nil
}

func (c *CloudinaryUploader) Ping(ctx context.Context) error {
	result, err := c.admin.Ping(ctx)
	if err != nil {
		return fmt.Errorf("failed to reach Cloudinary cloud %s: %w", c.cloudName, err)
	}
	if result == nil {
		return fmt.Errorf("failed to reach Cloudinary cloud %s: empty response", c.cloudName)
	}
	if result.Error.Message != "" {
		return fmt.Errorf("Cloudinary cloud %s rejected ping: %s", c.cloudName, result.Error.Message)
	}
	return nil
}

func mapUploadResult(r *uploader.UploadResult) media.Asset {
	return media.Asset{
		URL:          r.SecureURL,
		PublicID:     r.PublicID,
		Provider:     common.Cloudinary,
		ResourceType: r.ResourceType,
		Format:       r.Format,
		Bytes:        int64(r.Bytes),
	}
}
