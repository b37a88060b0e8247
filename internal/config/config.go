// File: internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	ConfigFileName = "config.yaml"
	ConfigDirName  = "imgup"

	// Overrides the settings file location
	ConfigPathEnv = "IMGUP_CONFIG"

	DefaultProvider = "cloudinary"
)

type UploadConfig struct {
	Provider string        `mapstructure:"provider" validate:"required"`
	Folder   string        `mapstructure:"folder"`
	Tags     []string      `mapstructure:"tags"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"gte=0"`
}

type CloudinaryConfig struct {
	CloudName string `mapstructure:"cloud_name" validate:"required"`
	APIKey    string `mapstructure:"api_key" validate:"required"`
	APISecret string `mapstructure:"api_secret" validate:"required"`
}

type S3Config struct {
	Bucket    string `mapstructure:"bucket" validate:"required"`
	Region    string `mapstructure:"region" validate:"required"`
	Prefix    string `mapstructure:"prefix"`
	PublicURL string `mapstructure:"public_url" validate:"omitempty,url"`
}

type GCSConfig struct {
	Bucket          string `mapstructure:"bucket" validate:"required"`
	CredentialsFile string `mapstructure:"credentials_file"`
	Prefix          string `mapstructure:"prefix"`
	PublicURL       string `mapstructure:"public_url" validate:"omitempty,url"`
}

// Config is built once at startup and handed to whatever needs it; nothing mutates it afterwards
type Config struct {
	Upload     UploadConfig     `mapstructure:"upload"`
	Cloudinary CloudinaryConfig `mapstructure:"cloudinary"`
	S3         S3Config         `mapstructure:"s3"`
	GCS        GCSConfig        `mapstructure:"gcs"`
}

// ConfigManager owns the persisted settings file. Environment variables are layered on
// top only when LoadConfig builds the runtime Config, so they never leak into the file.
type ConfigManager struct {
	file *viper.Viper
	path string
}

func NewConfigManager() (*ConfigManager, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}
	return NewConfigManagerWithPath(path)
}

func NewConfigManagerWithPath(path string) (*ConfigManager, error) {
	v := newFileViper(path)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("error checking config file %s: %w", path, err)
	}

	return &ConfigManager{file: v, path: path}, nil
}

func newFileViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return v
}

func getConfigPath() (string, error) {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error getting user home directory: %w", err)
	}

	return filepath.Join(homeDir, ".config", ConfigDirName, ConfigFileName), nil
}

func (m *ConfigManager) Path() string {
	return m.path
}

// Merges defaults, the settings file and the environment (highest precedence) into a Config
func (m *ConfigManager) LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("upload.provider", DefaultProvider)
	v.SetDefault("upload.timeout", "0s")

	// Blank values left in the file count as unset so defaults and validation still apply
	if err := v.MergeConfigMap(withoutEmpty(m.file.AllSettings())); err != nil {
		return nil, fmt.Errorf("error merging config file: %w", err)
	}

	for _, key := range KnownKeys() {
		args := append([]string{key}, envBindings[key]...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment for %s: %w", key, err)
		}
	}

	var cfg Config
	hooks := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := v.Unmarshal(&cfg, viper.DecodeHook(hooks)); err != nil {
		return nil, fmt.Errorf("error parsing configuration: %w", err)
	}

	if err := Validate("upload", cfg.Upload); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (m *ConfigManager) SetValue(key, value string) error {
	if !IsKnownKey(key) {
		return fmt.Errorf("unknown config key: %s. Known keys: %v", key, KnownKeys())
	}
	if key == "upload.timeout" {
		if d, err := time.ParseDuration(value); err != nil || d < 0 {
			return fmt.Errorf("invalid value for %s: %q is not a non-negative duration (e.g. 30s, 2m)", key, value)
		}
	}

	m.file.Set(key, value)
	return m.save()
}

func (m *ConfigManager) GetValue(key string) (interface{}, bool) {
	if !m.file.IsSet(key) {
		return nil, false
	}
	return m.file.Get(key), true
}

// DeleteValue removes key from the settings file. It reports false when the key held no value.
func (m *ConfigManager) DeleteValue(key string) (bool, error) {
	value, exists := m.GetValue(key)
	if !exists {
		return false, nil
	}

	settings := m.file.AllSettings()
	removeKey(settings, strings.Split(key, "."))

	// viper cannot unset a key, so the file is rebuilt from the remaining settings
	fresh := newFileViper(m.path)
	if err := fresh.MergeConfigMap(settings); err != nil {
		return false, fmt.Errorf("error rebuilding configuration: %w", err)
	}
	m.file = fresh
	if err := m.save(); err != nil {
		return false, err
	}

	s, isString := value.(string)
	return !isString || s != "", nil
}

func (m *ConfigManager) GetAllSettings() map[string]interface{} {
	return m.file.AllSettings()
}

func (m *ConfigManager) save() error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0o755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}
	if err := m.file.WriteConfigAs(m.path); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// removeKey deletes the dotted path from a nested settings map, dropping parents it leaves empty
func removeKey(settings map[string]interface{}, path []string) {
	if len(path) == 0 {
		return
	}
	if len(path) == 1 {
		delete(settings, path[0])
		return
	}

	child, ok := settings[path[0]].(map[string]interface{})
	if !ok {
		return
	}
	removeKey(child, path[1:])
	if len(child) == 0 {
		delete(settings, path[0])
	}
}

func withoutEmpty(settings map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(settings))
	for k, v := range settings {
		switch val := v.(type) {
		case string:
			if val != "" {
				out[k] = val
			}
		case map[string]interface{}:
			if nested := withoutEmpty(val); len(nested) > 0 {
				out[k] = nested
			}
		default:
			if v != nil {
				out[k] = v
			}
		}
	}
	return out
}
