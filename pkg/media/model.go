// File: pkg/media/model.go
package media

import (
	"fmt"
	"imgup/pkg/common"
)

// ResourceTypeAuto asks the remote service to detect the content type itself
const ResourceTypeAuto = "auto"

type UploadOptions struct {
	ResourceType string
	Folder       string
	Tags         []string
}

type DeleteOptions struct {
	ResourceType string
}

// Asset is what a provider reports back after a successful upload
type Asset struct {
	URL          string
	PublicID     string
	Provider     common.Provider
	ResourceType string
	Format       string
	// A value of -1 indicates that the size is unknown
	Bytes int64
}

type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

// Outcome is the result of one upload. Success carries URL and PublicID, Failed carries Error.
type Outcome struct {
	Status   Status `json:"status" yaml:"status"`
	URL      string `json:"url,omitempty" yaml:"url,omitempty"`
	PublicID string `json:"public_id,omitempty" yaml:"public_id,omitempty"`
	Error    string `json:"error,omitempty" yaml:"error,omitempty"`
	Bytes    int64  `json:"-" yaml:"-"`
}

func Succeeded(asset Asset) Outcome {
	return Outcome{
		Status:   StatusSuccess,
		URL:      asset.URL,
		PublicID: asset.PublicID,
		Bytes:    asset.Bytes,
	}
}

func Failed(message string) Outcome {
	return Outcome{
		Status: StatusFailed,
		Error:  message,
		Bytes:  -1,
	}
}

func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

// ReportEntry pairs an input path, exactly as given, with its outcome
type ReportEntry struct {
	Path    string `json:"file" yaml:"file"`
	Outcome `yaml:",inline"`
}

func FormatBytes(bytes int64) string {
	if bytes < 0 {
		return "N/A"
	}
	if bytes == 0 {
		return "0 B"
	}

	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	sizes := []string{"KB", "MB", "GB", "TB", "PB", "EB"}
	if exp >= len(sizes) {
		return fmt.Sprintf("%d B", bytes)
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), sizes[exp])
}
