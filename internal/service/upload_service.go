// File: internal/service/upload_service.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"imgup/internal/provider/factory"
	"imgup/pkg/media"

	"golang.org/x/sync/errgroup"
)

const maxConcurrentChecks = 4

type UploadService struct {
	providerFactory *factory.Factory
	logger          *slog.Logger
}

func NewUploadService(providerFactory *factory.Factory, logger *slog.Logger) *UploadService {
	return &UploadService{
		providerFactory: providerFactory,
		logger:          logger.With("service", "UploadService"),
	}
}

type BatchRequest struct {
	Provider string
	Paths    []string
	Options  BatchOptions
	// Receives one "Uploading: <path>" line per file
	Progress io.Writer
}

// ProviderStatus is the result of probing one configured provider
type ProviderStatus struct {
	Provider  string
	Reachable bool
	Error     string
}

// --- Upload Operations ---

func (s *UploadService) UploadFiles(ctx context.Context, req BatchRequest) ([]media.ReportEntry, error) {
	if len(req.Paths) == 0 {
		return nil, ErrNoFiles
	}

	s.logger.Debug("Starting UploadFiles operation", "provider", req.Provider, "files", len(req.Paths))

	client, err := s.getUploader(ctx, req.Provider)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	report, err := NewBatchUploader(client, req.Options, req.Progress, s.logger).UploadBatch(ctx, req.Paths)
	if err != nil {
		return nil, err
	}

	failed := 0
	for _, entry := range report {
		if !entry.OK() {
			failed++
		}
	}
	s.logger.Debug("Finished UploadFiles operation", "provider", req.Provider, "files", len(report), "failed", failed)

	return report, nil
}

func (s *UploadService) DeleteAsset(ctx context.Context, providerName, publicID string, opts media.DeleteOptions) error {
	s.logger.Debug("Starting DeleteAsset operation", "provider", providerName, "public_id", publicID)

	client, err := s.getUploader(ctx, providerName)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Delete(ctx, publicID, opts); err != nil {
		s.logger.Error("Failed to delete asset", "provider", providerName, "public_id", publicID, "error", err)
		return err
	}
	return nil
}

// --- Provider Operations ---

// CheckProviders pings every configured provider concurrently. Statuses follow the factory's
// sorted order; individual failures are reported in the status, not as an error.
func (s *UploadService) CheckProviders(ctx context.Context) []ProviderStatus {
	providerNames := s.providerFactory.GetConfiguredProviders()
	statuses := make([]ProviderStatus, len(providerNames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for i, pName := range providerNames {
		statuses[i] = ProviderStatus{Provider: pName}

		g.Go(func() error {
			status := &statuses[i]

			client, err := s.providerFactory.GetUploader(gctx, pName)
			if err != nil {
				s.logger.Error("Failed to initialize provider client", "provider", pName, "error", err)
				status.Error = err.Error()
				return nil
			}
			defer client.Close()

			if err := client.Ping(gctx); err != nil {
				s.logger.Warn("Provider ping failed", "provider", pName, "error", err)
				status.Error = err.Error()
				return nil
			}

			status.Reachable = true
			s.logger.Debug("Provider reachable", "provider", pName)
			return nil
		})
	}

	// Every goroutine records its own failure and returns nil
	_ = g.Wait()
	return statuses
}

// Helper to initialize the upload client and handle common error logging
func (s *UploadService) getUploader(ctx context.Context, providerName string) (media.Uploader, error) {
	client, err := s.providerFactory.GetUploader(ctx, providerName)
	if err != nil {
		s.logger.Error("Failed to initialize provider", "provider", providerName, "error", err)
		return nil, fmt.Errorf("error initializing provider: %w", err)
	}
	return client, nil
}
