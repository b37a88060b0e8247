// File: pkg/media/gcs/store.go
package gcs

import (
	"context"
	"errors"
	"fmt"
	"io"

	gcpstorage "cloud.google.com/go/storage"
)

// objectStore is the slice of Cloud Storage this provider needs
type objectStore interface {
	Exists(ctx context.Context, bucket, key string) (bool, error)
	Write(ctx context.Context, bucket, key string, attrs writeAttrs, body io.Reader) error
	Delete(ctx context.Context, bucket, key string) error
	BucketAttrs(ctx context.Context, bucket string) error
	Close() error
}

type writeAttrs struct {
	ContentType string
	Metadata    map[string]string
}

type sdkStore struct {
	client *gcpstorage.Client
}

func (s *sdkStore) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := s.client.Bucket(bucket).Object(key).Attrs(ctx)
	if errors.Is(err, gcpstorage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error getting object attributes: %w", err)
	}
	return true, nil
}

func (s *sdkStore) Write(ctx context.Context, bucket, key string, attrs writeAttrs, body io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = attrs.ContentType
	w.Metadata = attrs.Metadata

	return commitWrite(w, body, cancel)
}

// commitWrite copies body into w and commits it with Close. A failed copy abandons the
// write through cancel instead, since closing would store the partial object.
func commitWrite(w io.WriteCloser, body io.Reader, cancel context.CancelFunc) error {
	if _, err := io.Copy(w, body); err != nil {
		cancel()
		return fmt.Errorf("error writing object: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("error finalizing object: %w", err)
	}
	return nil
}

func (s *sdkStore) Delete(ctx context.Context, bucket, key string) error {
	return s.client.Bucket(bucket).Object(key).Delete(ctx)
}

func (s *sdkStore) BucketAttrs(ctx context.Context, bucket string) error {
	_, err := s.client.Bucket(bucket).Attrs(ctx)
	return err
}

func (s *sdkStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
