// File: internal/service/batch.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"imgup/pkg/media"
)

// ErrNoFiles rejects an empty batch before any upload is attempted
var ErrNoFiles = errors.New("please provide at least one file path")

type BatchOptions struct {
	Folder string
	Tags   []string
	// Zero waits for the remote service indefinitely
	Timeout time.Duration
}

// BatchUploader drives one upload per path, strictly one at a time, and never lets a
// failed file stop the rest of the batch.
type BatchUploader struct {
	client   media.Uploader
	opts     BatchOptions
	progress io.Writer
	logger   *slog.Logger

	absPath func(string) (string, error)
}

func NewBatchUploader(client media.Uploader, opts BatchOptions, progress io.Writer, logger *slog.Logger) *BatchUploader {
	if progress == nil {
		progress = io.Discard
	}
	return &BatchUploader{
		client:   client,
		opts:     opts,
		progress: progress,
		logger:   logger.With("component", "BatchUploader"),
		absPath:  filepath.Abs,
	}
}

// UploadOne resolves path, announces it on the progress writer and uploads it with
// content type auto-detection. Errors from the provider come back as a Failed outcome.
func (b *BatchUploader) UploadOne(ctx context.Context, path string) media.Outcome {
	absolutePath, err := b.absPath(path)
	if err != nil {
		b.logger.Warn("Failed to resolve path", "path", path, "error", err)
		return media.Failed(fmt.Sprintf("cannot resolve path %s: %v", path, err))
	}

	fmt.Fprintf(b.progress, "Uploading: %s\n", absolutePath)

	uploadCtx := ctx
	if b.opts.Timeout > 0 {
		var cancel context.CancelFunc
		uploadCtx, cancel = context.WithTimeout(ctx, b.opts.Timeout)
		defer cancel()
	}

	asset, err := b.client.Upload(uploadCtx, absolutePath, media.UploadOptions{
		ResourceType: media.ResourceTypeAuto,
		Folder:       b.opts.Folder,
		Tags:         b.opts.Tags,
	})
	if err != nil {
		b.logger.Debug("Upload failed", "path", absolutePath, "provider", b.client.ProviderName(), "error", err)
		return media.Failed(err.Error())
	}

	b.logger.Debug("Upload succeeded", "path", absolutePath, "provider", b.client.ProviderName(), "public_id", asset.PublicID)
	return media.Succeeded(asset)
}

// UploadBatch returns exactly one entry per path, in input order. The only error it
// returns is ErrNoFiles.
func (b *BatchUploader) UploadBatch(ctx context.Context, paths []string) ([]media.ReportEntry, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	report := make([]media.ReportEntry, 0, len(paths))
	for _, path := range paths {
		report = append(report, media.ReportEntry{
			Path:    path,
			Outcome: b.UploadOne(ctx, path),
		})
	}
	return report, nil
}
