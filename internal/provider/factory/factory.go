// File: internal/provider/factory/factory.go
package factory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"imgup/internal/config"
	"imgup/internal/provider/registry"
	"imgup/pkg/media"
)

var (
	ErrUnsupportedProvider   = errors.New("unsupported provider")
	ErrProviderNotConfigured = errors.New("provider not configured")
)

type Factory struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewFactory(cfg *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		cfg:    cfg,
		logger: logger,
	}
}

// Returns a list of providers that are registered and configured
func (f *Factory) GetConfiguredProviders() []string {
	var configuredProviders []string
	allRegistrations := registry.GetAllRegistrations()

	for name, registration := range allRegistrations {
		if registration.ConfigCheck(f.cfg) {
			configuredProviders = append(configuredProviders, name)
		}
	}
	sort.Strings(configuredProviders)
	return configuredProviders
}

// Checks if a specific provider is registered and configured
func (f *Factory) IsConfigured(providerName string) bool {
	registration, exists := registry.GetRegistration(providerName)
	if !exists {
		return false
	}
	return registration.ConfigCheck(f.cfg)
}

// Initializes and returns the upload client for the specified provider
func (f *Factory) GetUploader(ctx context.Context, providerName string) (media.Uploader, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(providerName))
	providerLogger := f.logger.With("provider", normalizedName)

	registration, exists := registry.GetRegistration(normalizedName)
	if !exists {
		return nil, fmt.Errorf("%w: %s. Supported providers are: %v", ErrUnsupportedProvider, providerName, registry.GetSupportedProviders())
	}

	if !registration.ConfigCheck(f.cfg) {
		if registration.Validate != nil {
			if err := registration.Validate(f.cfg); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrProviderNotConfigured, err)
			}
		}
		return nil, fmt.Errorf("%w: '%s'. Use 'imgup config set %s.<key> <value>' or the matching environment variables", ErrProviderNotConfigured, normalizedName, normalizedName)
	}

	client, err := registration.Initializer(ctx, f.cfg, providerLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize provider %s: %w", normalizedName, err)
	}

	return client, nil
}
