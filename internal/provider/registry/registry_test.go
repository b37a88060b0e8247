package registry

import (
	"context"
	"log/slog"
	"testing"

	"imgup/internal/config"
	"imgup/pkg/media"

	"gotest.tools/v3/assert"
)

func testRegistration() ProviderRegistration {
	return ProviderRegistration{
		ConfigCheck: func(*config.Config) bool { return true },
		Initializer: func(context.Context, *config.Config, *slog.Logger) (media.Uploader, error) {
			return nil, nil
		},
	}
}

func TestRegisterProviderNormalizesName(t *testing.T) {
	RegisterProvider("Registry-Test-Mixed", testRegistration())

	assert.Assert(t, IsSupported("registry-test-mixed"))
	assert.Assert(t, IsSupported("REGISTRY-TEST-MIXED"))
	_, ok := GetRegistration("registry-test-mixed")
	assert.Assert(t, ok)
	assert.Assert(t, !IsSupported("registry-test-unknown"))
}

func TestRegisterProviderDuplicatePanics(t *testing.T) {
	RegisterProvider("registry-test-dup", testRegistration())

	defer func() {
		r := recover()
		assert.Equal(t, r, "provider registry-test-dup already registered")
	}()
	RegisterProvider("registry-test-dup", testRegistration())
}

func TestRegisterProviderIncompletePanics(t *testing.T) {
	defer func() {
		r := recover()
		assert.Equal(t, r, "provider registry-test-partial registration missing Initializer")
	}()
	RegisterProvider("registry-test-partial", ProviderRegistration{
		ConfigCheck: func(*config.Config) bool { return true },
	})
}

func TestGetSupportedProvidersSorted(t *testing.T) {
	RegisterProvider("registry-test-b", testRegistration())
	RegisterProvider("registry-test-a", testRegistration())

	providers := GetSupportedProviders()

	var ours []string
	for _, p := range providers {
		if p == "registry-test-a" || p == "registry-test-b" {
			ours = append(ours, p)
		}
	}
	assert.DeepEqual(t, ours, []string{"registry-test-a", "registry-test-b"})
	assert.Equal(t, len(GetAllRegistrations()), len(providers))
}
