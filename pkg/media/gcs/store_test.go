package gcs

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

type recordingWriter struct {
	bytes.Buffer
	closed bool
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk read error") }

func TestCommitWriteAbandonsPartialObject(t *testing.T) {
	w := &recordingWriter{}
	cancelled := false
	body := io.MultiReader(strings.NewReader("partial"), failingReader{})

	err := commitWrite(w, body, func() { cancelled = true })

	assert.Error(t, err, "error writing object: disk read error")
	assert.Assert(t, cancelled)
	assert.Assert(t, !w.closed)
	assert.Equal(t, w.String(), "partial")
}

func TestCommitWriteClosesOnSuccess(t *testing.T) {
	w := &recordingWriter{}
	cancelled := false

	err := commitWrite(w, strings.NewReader("filedata"), func() { cancelled = true })

	assert.NilError(t, err)
	assert.Assert(t, w.closed)
	assert.Assert(t, !cancelled)
	assert.Equal(t, w.String(), "filedata")
}
