package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"imgup/internal/config"
	"imgup/internal/provider/factory"
	"imgup/internal/provider/registry"
	"imgup/pkg/media"
	"imgup/pkg/media/mediatest"

	"gotest.tools/v3/assert"
)

var (
	currentFake     *mediatest.FakeUploader
	initializations int
)

func init() {
	registry.RegisterProvider("service-test", registry.ProviderRegistration{
		ConfigCheck: func(*config.Config) bool { return true },
		Initializer: func(context.Context, *config.Config, *slog.Logger) (media.Uploader, error) {
			initializations++
			return currentFake, nil
		},
	})
	registry.RegisterProvider("service-test-unconfigured", registry.ProviderRegistration{
		ConfigCheck: func(*config.Config) bool { return false },
		Initializer: func(context.Context, *config.Config, *slog.Logger) (media.Uploader, error) {
			initializations++
			return currentFake, nil
		},
	})
}

func newTestService(t *testing.T) (*UploadService, *mediatest.FakeUploader) {
	t.Helper()
	currentFake = mediatest.NewFakeUploader()
	initializations = 0
	f := factory.NewFactory(&config.Config{}, discardLogger)
	return NewUploadService(f, discardLogger), currentFake
}

func TestUploadFilesRunsBatchAndCloses(t *testing.T) {
	svc, fake := newTestService(t)
	var progress bytes.Buffer

	report, err := svc.UploadFiles(context.Background(), BatchRequest{
		Provider: "service-test",
		Paths:    []string{"one.png", "two.png"},
		Progress: &progress,
	})

	assert.NilError(t, err)
	assert.Equal(t, len(report), 2)
	assert.Equal(t, report[0].URL, "https://fake/one.png")
	assert.Equal(t, report[1].PublicID, "two")
	assert.Assert(t, fake.Closed())
	assert.Equal(t, bytes.Count(progress.Bytes(), []byte("Uploading: ")), 2)
}

func TestUploadFilesEmptyNeverBuildsProvider(t *testing.T) {
	svc, fake := newTestService(t)

	_, err := svc.UploadFiles(context.Background(), BatchRequest{Provider: "service-test"})

	assert.ErrorIs(t, err, ErrNoFiles)
	assert.Equal(t, initializations, 0)
	assert.Equal(t, len(fake.Calls()), 0)
}

func TestUploadFilesUnconfiguredProvider(t *testing.T) {
	svc, fake := newTestService(t)

	_, err := svc.UploadFiles(context.Background(), BatchRequest{
		Provider: "service-test-unconfigured",
		Paths:    []string{"one.png"},
	})

	assert.ErrorIs(t, err, factory.ErrProviderNotConfigured)
	assert.Equal(t, initializations, 0)
	assert.Equal(t, len(fake.Calls()), 0)
}

func TestDeleteAsset(t *testing.T) {
	svc, fake := newTestService(t)

	err := svc.DeleteAsset(context.Background(), "service-test", "folder/a123", media.DeleteOptions{ResourceType: "image"})

	assert.NilError(t, err)
	assert.DeepEqual(t, fake.Deleted(), []string{"folder/a123"})
	assert.Assert(t, fake.Closed())
}

func TestDeleteAssetError(t *testing.T) {
	svc, fake := newTestService(t)
	fake.DeleteErr = errors.New("not found")

	err := svc.DeleteAsset(context.Background(), "service-test", "a123", media.DeleteOptions{})

	assert.ErrorContains(t, err, "not found")
}

func TestCheckProvidersPingsConfiguredOnly(t *testing.T) {
	svc, fake := newTestService(t)
	fake.PingErr = errors.New("invalid credentials")

	statuses := svc.CheckProviders(context.Background())

	assert.DeepEqual(t, statuses, []ProviderStatus{
		{Provider: "service-test", Error: "invalid credentials"},
	})
	assert.Equal(t, initializations, 1)
	assert.Assert(t, fake.Closed())
}

func TestCheckProvidersReachable(t *testing.T) {
	svc, _ := newTestService(t)

	statuses := svc.CheckProviders(context.Background())

	assert.DeepEqual(t, statuses, []ProviderStatus{{Provider: "service-test", Reachable: true}})
}
