// Package mediatest provides an in-memory media.Uploader for tests.
package mediatest

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"imgup/pkg/common"
	"imgup/pkg/media"
)

type Call struct {
	Path string
	Opts media.UploadOptions
}

// Result is the canned response for one file, keyed by base name in FakeUploader.Results
type Result struct {
	Asset media.Asset
	Err   error
}

// FakeUploader records every call. Files without a canned Result succeed with a URL
// derived from their base name.
type FakeUploader struct {
	Name    common.Provider
	Results map[string]Result

	// Called while the upload is in flight, if set
	OnUpload func(path string)

	DeleteErr error
	PingErr   error

	mu         sync.Mutex
	calls      []Call
	deleted    []string
	inFlight   int
	overlapped bool
	closed     bool
}

var _ media.Uploader = (*FakeUploader)(nil)

func NewFakeUploader() *FakeUploader {
	return &FakeUploader{
		Name:    "fake",
		Results: make(map[string]Result),
	}
}

func (f *FakeUploader) ProviderName() common.Provider {
	return f.Name
}

func (f *FakeUploader) Upload(ctx context.Context, path string, opts media.UploadOptions) (media.Asset, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > 1 {
		f.overlapped = true
	}
	f.calls = append(f.calls, Call{Path: path, Opts: opts})
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.OnUpload != nil {
		f.OnUpload(path)
	}

	if err := ctx.Err(); err != nil {
		return media.Asset{}, err
	}

	base := filepath.Base(path)
	if r, ok := f.Results[base]; ok {
		return r.Asset, r.Err
	}

	return media.Asset{
		URL:      "https://fake/" + base,
		PublicID: strings.TrimSuffix(base, filepath.Ext(base)),
		Provider: f.Name,
		Bytes:    -1,
	}, nil
}

func (f *FakeUploader) Delete(ctx context.Context, publicID string, opts media.DeleteOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.deleted = append(f.deleted, publicID)
	return nil
}

func (f *FakeUploader) Ping(ctx context.Context) error {
	return f.PingErr
}

func (f *FakeUploader) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *FakeUploader) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Returns the uploaded paths in call order
func (f *FakeUploader) Paths() []string {
	calls := f.Calls()
	paths := make([]string, len(calls))
	for i, c := range calls {
		paths[i] = c.Path
	}
	return paths
}

func (f *FakeUploader) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

// Reports whether two uploads were ever in flight at the same time
func (f *FakeUploader) Overlapped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.overlapped
}

func (f *FakeUploader) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}
