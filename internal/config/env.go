// File: internal/config/env.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/joho/godotenv"
)

// Environment variables bound to each settings key, in lookup order
var envBindings = map[string][]string{
	"upload.provider": {"IMGUP_PROVIDER"},
	"upload.folder":   {"IMGUP_FOLDER"},
	"upload.tags":     {"IMGUP_TAGS"},
	"upload.timeout":  {"IMGUP_TIMEOUT"},

	"cloudinary.cloud_name": {"CLOUDINARY_CLOUD_NAME"},
	"cloudinary.api_key":    {"CLOUDINARY_API_KEY"},
	"cloudinary.api_secret": {"CLOUDINARY_API_SECRET"},

	"s3.bucket":     {"IMGUP_S3_BUCKET"},
	"s3.region":     {"IMGUP_S3_REGION", "AWS_REGION"},
	"s3.prefix":     {"IMGUP_S3_PREFIX"},
	"s3.public_url": {"IMGUP_S3_PUBLIC_URL"},

	"gcs.bucket":           {"IMGUP_GCS_BUCKET"},
	"gcs.credentials_file": {"IMGUP_GCS_CREDENTIALS_FILE", "GOOGLE_APPLICATION_CREDENTIALS"},
	"gcs.prefix":           {"IMGUP_GCS_PREFIX"},
	"gcs.public_url":       {"IMGUP_GCS_PUBLIC_URL"},
}

// Returns every settings key in sorted order
func KnownKeys() []string {
	keys := make([]string, 0, len(envBindings))
	for k := range envBindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func IsKnownKey(key string) bool {
	_, ok := envBindings[key]
	return ok
}

func EnvVarsFor(key string) []string {
	return envBindings[key]
}

// Loads variables from the given dotenv files (".env" when none are given) without
// overriding anything already present in the environment. Missing files are ignored.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}

	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("error loading %s: %w", name, err)
		}
	}
	return nil
}
