package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range KnownKeys() {
		for _, env := range EnvVarsFor(key) {
			t.Setenv(env, "")
		}
	}
}

func newTestManager(t *testing.T) *ConfigManager {
	t.Helper()
	clearEnv(t)
	m, err := NewConfigManagerWithPath(filepath.Join(t.TempDir(), "imgup", ConfigFileName))
	assert.NilError(t, err)
	return m
}

func TestLoadConfigDefaults(t *testing.T) {
	m := newTestManager(t)

	cfg, err := m.LoadConfig()

	assert.NilError(t, err)
	assert.Equal(t, cfg.Upload.Provider, DefaultProvider)
	assert.Equal(t, cfg.Upload.Timeout, time.Duration(0))
	assert.Equal(t, cfg.Cloudinary.CloudName, "")
}

func TestLoadConfigReadsCloudinaryEnv(t *testing.T) {
	m := newTestManager(t)
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := m.LoadConfig()

	assert.NilError(t, err)
	assert.DeepEqual(t, cfg.Cloudinary, CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret"})
	assert.NilError(t, Validate("cloudinary", cfg.Cloudinary))
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	m := newTestManager(t)
	assert.NilError(t, m.SetValue("cloudinary.cloud_name", "from-file"))
	assert.NilError(t, m.SetValue("s3.bucket", "file-bucket"))
	t.Setenv("CLOUDINARY_CLOUD_NAME", "from-env")

	cfg, err := m.LoadConfig()

	assert.NilError(t, err)
	assert.Equal(t, cfg.Cloudinary.CloudName, "from-env")
	assert.Equal(t, cfg.S3.Bucket, "file-bucket")
}

func TestLoadConfigSecondaryEnvName(t *testing.T) {
	m := newTestManager(t)
	t.Setenv("AWS_REGION", "eu-west-1")

	cfg, err := m.LoadConfig()

	assert.NilError(t, err)
	assert.Equal(t, cfg.S3.Region, "eu-west-1")
}

func TestLoadConfigDecodesTimeoutAndTags(t *testing.T) {
	m := newTestManager(t)
	t.Setenv("IMGUP_TIMEOUT", "45s")
	t.Setenv("IMGUP_TAGS", "blog,2024")

	cfg, err := m.LoadConfig()

	assert.NilError(t, err)
	assert.Equal(t, cfg.Upload.Timeout, 45*time.Second)
	assert.DeepEqual(t, cfg.Upload.Tags, []string{"blog", "2024"})
}

func TestLoadConfigRejectsBadTimeout(t *testing.T) {
	m := newTestManager(t)
	t.Setenv("IMGUP_TIMEOUT", "soon")

	_, err := m.LoadConfig()

	assert.ErrorContains(t, err, "error parsing configuration")
}

func TestSetValueUnknownKey(t *testing.T) {
	m := newTestManager(t)

	err := m.SetValue("cloudinary.region", "x")

	assert.ErrorContains(t, err, "unknown config key")
	_, statErr := os.Stat(m.Path())
	assert.Assert(t, os.IsNotExist(statErr))
}

func TestSetGetDeletePersists(t *testing.T) {
	m := newTestManager(t)
	assert.NilError(t, m.SetValue("gcs.bucket", "media"))

	reloaded, err := NewConfigManagerWithPath(m.Path())
	assert.NilError(t, err)
	value, ok := reloaded.GetValue("gcs.bucket")
	assert.Assert(t, ok)
	assert.Equal(t, value, "media")

	deleted, err := reloaded.DeleteValue("gcs.bucket")
	assert.NilError(t, err)
	assert.Assert(t, deleted)

	deleted, err = reloaded.DeleteValue("gcs.bucket")
	assert.NilError(t, err)
	assert.Assert(t, !deleted)
}

func TestGetValueMissing(t *testing.T) {
	m := newTestManager(t)

	_, ok := m.GetValue("s3.bucket")

	assert.Assert(t, !ok)
}

func TestValidateReportsMissingKeys(t *testing.T) {
	err := Validate("cloudinary", CloudinaryConfig{CloudName: "demo"})

	assert.ErrorContains(t, err, "cloudinary.api_key is required")
	assert.ErrorContains(t, err, "CLOUDINARY_API_KEY")
	assert.ErrorContains(t, err, "cloudinary.api_secret is required")
	assert.Assert(t, !strings.Contains(err.Error(), "cloud_name"))
}

func TestValidateRejectsBadPublicURL(t *testing.T) {
	err := Validate("s3", S3Config{Bucket: "b", Region: "r", PublicURL: "not a url"})

	assert.ErrorContains(t, err, "s3.public_url must be a valid URL")
}

func TestLoadDotEnvKeepsExistingEnvironment(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "IMGUP_DOTENV_NEW=loaded\nIMGUP_DOTENV_KEEP=from-file\n"
	assert.NilError(t, os.WriteFile(envFile, []byte(content), 0o600))
	t.Setenv("IMGUP_DOTENV_KEEP", "original")
	t.Cleanup(func() { os.Unsetenv("IMGUP_DOTENV_NEW") })

	assert.NilError(t, LoadDotEnv(envFile))

	assert.Equal(t, os.Getenv("IMGUP_DOTENV_NEW"), "loaded")
	assert.Equal(t, os.Getenv("IMGUP_DOTENV_KEEP"), "original")
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	err := LoadDotEnv(filepath.Join(t.TempDir(), "nope.env"))

	assert.NilError(t, err)
}

func TestSetValueRejectsBadTimeout(t *testing.T) {
	m := newTestManager(t)

	err := m.SetValue("upload.timeout", "soon")
	assert.ErrorContains(t, err, "not a non-negative duration")

	assert.NilError(t, m.SetValue("upload.timeout", "45s"))
	value, ok := m.GetValue("upload.timeout")
	assert.Assert(t, ok)
	assert.Equal(t, value, "45s")
}

func TestDeleteValueRestoresDefaults(t *testing.T) {
	m := newTestManager(t)
	assert.NilError(t, m.SetValue("upload.timeout", "30s"))
	assert.NilError(t, m.SetValue("upload.provider", "s3"))

	for _, key := range []string{"upload.timeout", "upload.provider"} {
		deleted, err := m.DeleteValue(key)
		assert.NilError(t, err)
		assert.Assert(t, deleted, key)
	}

	reloaded, err := NewConfigManagerWithPath(m.Path())
	assert.NilError(t, err)
	_, ok := reloaded.GetValue("upload.timeout")
	assert.Assert(t, !ok)

	cfg, err := reloaded.LoadConfig()
	assert.NilError(t, err)
	assert.Equal(t, cfg.Upload.Timeout, time.Duration(0))
	assert.Equal(t, cfg.Upload.Provider, DefaultProvider)
}

func TestDeleteValueKeepsSiblings(t *testing.T) {
	m := newTestManager(t)
	assert.NilError(t, m.SetValue("s3.bucket", "media"))
	assert.NilError(t, m.SetValue("s3.region", "eu-west-1"))

	deleted, err := m.DeleteValue("s3.bucket")
	assert.NilError(t, err)
	assert.Assert(t, deleted)

	reloaded, err := NewConfigManagerWithPath(m.Path())
	assert.NilError(t, err)
	value, ok := reloaded.GetValue("s3.region")
	assert.Assert(t, ok)
	assert.Equal(t, value, "eu-west-1")
	_, ok = reloaded.GetValue("s3.bucket")
	assert.Assert(t, !ok)
}

func TestLoadConfigIgnoresBlankFileValues(t *testing.T) {
	m := newTestManager(t)
	assert.NilError(t, os.MkdirAll(filepath.Dir(m.Path()), 0o755))
	data := "upload:\n  provider: \"\"\n  timeout: \"\"\n  folder: albums\n"
	assert.NilError(t, os.WriteFile(m.Path(), []byte(data), 0o600))

	reloaded, err := NewConfigManagerWithPath(m.Path())
	assert.NilError(t, err)
	cfg, err := reloaded.LoadConfig()

	assert.NilError(t, err)
	assert.Equal(t, cfg.Upload.Provider, DefaultProvider)
	assert.Equal(t, cfg.Upload.Timeout, time.Duration(0))
	assert.Equal(t, cfg.Upload.Folder, "albums")
}
