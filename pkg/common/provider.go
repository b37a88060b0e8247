// File: pkg/common/provider.go
package common

type Provider string

const (
	Cloudinary Provider = "cloudinary"
	S3         Provider = "s3"
	GCS        Provider = "gcs"
)
