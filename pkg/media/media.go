// File: pkg/media/media.go
package media

import (
	"context"
	"imgup/pkg/common"
)

// Uploader is the upload capability every media provider implements.
// Implementations receive an already resolved absolute path.
type Uploader interface {
	ProviderName() common.Provider

	// Uploads a single local file and returns the asset the remote service created
	Upload(ctx context.Context, path string, opts UploadOptions) (Asset, error)

	// Removes a previously uploaded asset by its public identifier
	Delete(ctx context.Context, publicID string, opts DeleteOptions) error

	// Verifies that the credentials and target are usable without uploading anything
	Ping(ctx context.Context) error

	Close() error
}
