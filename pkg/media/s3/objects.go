// File: pkg/media/s3/objects.go
package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"imgup/pkg/common"
	"imgup/pkg/media"

	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

func (s *S3Uploader) Upload(ctx context.Context, path string, opts media.UploadOptions) (media.Asset, error) {
	s.logger.Debug("Starting S3 Upload operation", "path", path, "bucket", s.bucket)

	file, err := s.openFile(path)
	if err != nil {
		return media.Asset{}, err
	}
	defer func() { _ = file.Close() }()

	contentKey, size, err := media.ContentKey(file, path)
	if err != nil {
		return media.Asset{}, err
	}
	key := media.JoinKey(s.prefix, opts.Folder, contentKey)

	asset := media.Asset{
		URL:      s.objectURL(key),
		PublicID: key,
		Provider: common.S3,
		Bytes:    size,
	}

	if exists, err := s.objectExists(ctx, key); err != nil {
		return media.Asset{}, err
	} else if exists {
		s.logger.Debug("Object already present, skipping upload", "key", key)
		return asset, nil
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return media.Asset{}, err
	}

	input := &awss3.PutObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
		Body:   file,
	}
	if opts.ResourceType == media.ResourceTypeAuto {
		contentType, err := media.DetectContentType(file)
		if err != nil {
			return media.Asset{}, err
		}
		input.ContentType = &contentType
		asset.ResourceType = contentType
	}
	if len(opts.Tags) > 0 {
		tagging := tagQuery(opts.Tags)
		input.Tagging = &tagging
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return media.Asset{}, err
	}

	return asset, nil
}

func (s *S3Uploader) Delete(ctx context.Context, publicID string, _ media.DeleteOptions) error {
	s.logger.Debug("Starting S3 Delete operation", "bucket", s.bucket, "key", publicID)

	_, err := s.client.DeleteObject(ctx, &awss3.DeleteObjectInput{
		Bucket: &s.bucket,
		Key:    &publicID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete object %s: %w", publicID, err)
	}
	return nil
}

func (s *S3Uploader) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &awss3.HeadBucketInput{Bucket: &s.bucket})
	if err != nil {
		return fmt.Errorf("cannot access bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *S3Uploader) objectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.HeadObject(ctx, &awss3.HeadObjectInput{
		Bucket: &s.bucket,
		Key:    &key,
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *S3Uploader) objectURL(key string) string {
	if s.publicURL != "" {
		return media.ObjectURL(s.publicURL, key)
	}
	return media.ObjectURL(fmt.Sprintf("https://%s.s3.%s.amazonaws.com", s.bucket, s.region), key)
}

// Tags become "tag1=&tag2=" object tagging, S3 has no bare labels
func tagQuery(tags []string) string {
	var sb strings.Builder
	for i, tag := range tags {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(url.QueryEscape(tag))
		sb.WriteString("=")
	}
	return sb.String()
}
