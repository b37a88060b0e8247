// File: pkg/media/gcs/objects.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"imgup/pkg/common"
	"imgup/pkg/media"

	gcpstorage "cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

const publicBaseURL = "https://storage.googleapis.com"

func (g *GCSUploader) Upload(ctx context.Context, path string, opts media.UploadOptions) (media.Asset, error) {
	g.logger.Debug("Starting GCS Upload operation", "path", path, "bucket", g.bucket)

	file, err := g.openFile(path)
	if err != nil {
		return media.Asset{}, err
	}
	defer func() { _ = file.Close() }()

	contentKey, size, err := media.ContentKey(file, path)
	if err != nil {
		return media.Asset{}, err
	}
	key := media.JoinKey(g.prefix, opts.Folder, contentKey)

	asset := media.Asset{
		URL:      g.objectURL(key),
		PublicID: key,
		Provider: common.GCS,
		Bytes:    size,
	}

	exists, err := g.store.Exists(ctx, g.bucket, key)
	if err != nil {
		return media.Asset{}, err
	}
	if exists {
		g.logger.Debug("Object already present, skipping upload", "key", key)
		return asset, nil
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return media.Asset{}, err
	}

	var attrs writeAttrs
	if opts.ResourceType == media.ResourceTypeAuto {
		if attrs.ContentType, err = media.DetectContentType(file); err != nil {
			return media.Asset{}, err
		}
		asset.ResourceType = attrs.ContentType
	}
	if len(opts.Tags) > 0 {
		attrs.Metadata = map[string]string{"tags": strings.Join(opts.Tags, ",")}
	}

	if err := g.store.Write(ctx, g.bucket, key, attrs, file); err != nil {
		return media.Asset{}, mapAPIError(err)
	}

	return asset, nil
}

func (g *GCSUploader) Delete(ctx context.Context, publicID string, _ media.DeleteOptions) error {
	g.logger.Debug("Starting GCS Delete operation", "bucket", g.bucket, "key", publicID)

	err := g.store.Delete(ctx, g.bucket, publicID)
	if errors.Is(err, gcpstorage.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: not found", publicID)
	}
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", publicID, mapAPIError(err))
	}
	return nil
}

func (g *GCSUploader) Ping(ctx context.Context) error {
	if err := g.store.BucketAttrs(ctx, g.bucket); err != nil {
		return fmt.Errorf("cannot access bucket %s: %w", g.bucket, mapAPIError(err))
	}
	return nil
}

func (g *GCSUploader) objectURL(key string) string {
	if g.publicURL != "" {
		return media.ObjectURL(g.publicURL, key)
	}
	return media.ObjectURL(publicBaseURL+"/"+g.bucket, key)
}

// Reduces a googleapi error to its status message so reports stay readable
func mapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fmt.Errorf("%s (HTTP %d)", apiErr.Message, apiErr.Code)
	}
	return err
}
