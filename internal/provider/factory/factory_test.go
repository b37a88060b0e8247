package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"imgup/internal/config"
	"imgup/internal/provider/registry"
	"imgup/pkg/media"
	"imgup/pkg/media/mediatest"

	"gotest.tools/v3/assert"
)

var errInit = errors.New("init failed")

func init() {
	registry.RegisterProvider("factory-test-ready", registry.ProviderRegistration{
		ConfigCheck: func(cfg *config.Config) bool { return cfg.Upload.Folder == "ready" },
		Initializer: func(context.Context, *config.Config, *slog.Logger) (media.Uploader, error) {
			return mediatest.NewFakeUploader(), nil
		},
		Validate: func(cfg *config.Config) error {
			if cfg.Upload.Folder != "ready" {
				return errors.New("upload.folder must be 'ready'")
			}
			return nil
		},
	})
	registry.RegisterProvider("factory-test-broken", registry.ProviderRegistration{
		ConfigCheck: func(*config.Config) bool { return true },
		Initializer: func(context.Context, *config.Config, *slog.Logger) (media.Uploader, error) {
			return nil, errInit
		},
	})
}

func newTestFactory(folder string) *Factory {
	cfg := &config.Config{Upload: config.UploadConfig{Folder: folder}}
	return NewFactory(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestGetUploaderConfigured(t *testing.T) {
	f := newTestFactory("ready")

	client, err := f.GetUploader(context.Background(), " Factory-Test-Ready ")

	assert.NilError(t, err)
	assert.Equal(t, string(client.ProviderName()), "fake")
}

func TestGetUploaderNotConfigured(t *testing.T) {
	f := newTestFactory("")

	_, err := f.GetUploader(context.Background(), "factory-test-ready")

	assert.ErrorIs(t, err, ErrProviderNotConfigured)
	assert.ErrorContains(t, err, "upload.folder must be 'ready'")
}

func TestGetUploaderUnsupported(t *testing.T) {
	f := newTestFactory("ready")

	_, err := f.GetUploader(context.Background(), "factory-test-missing")

	assert.ErrorIs(t, err, ErrUnsupportedProvider)
}

func TestGetUploaderInitializerError(t *testing.T) {
	f := newTestFactory("ready")

	_, err := f.GetUploader(context.Background(), "factory-test-broken")

	assert.ErrorIs(t, err, errInit)
	assert.ErrorContains(t, err, "failed to initialize provider factory-test-broken")
}

func TestConfiguredProviders(t *testing.T) {
	ready := newTestFactory("ready")
	notReady := newTestFactory("")

	assert.Assert(t, ready.IsConfigured("factory-test-ready"))
	assert.Assert(t, !notReady.IsConfigured("factory-test-ready"))
	assert.Assert(t, !ready.IsConfigured("factory-test-missing"))

	configured := notReady.GetConfiguredProviders()
	for _, name := range configured {
		assert.Assert(t, name != "factory-test-ready")
	}
}
