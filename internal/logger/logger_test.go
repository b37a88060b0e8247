package logger

import (
	"bytes"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSetDebugRaisesVerbosity(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf)
	t.Cleanup(func() { SetDebug(false) })

	log.Debug("hidden")
	assert.Equal(t, buf.String(), "")

	SetDebug(true)
	log.Debug("shown", "file", "a.png")
	assert.Assert(t, strings.Contains(buf.String(), "msg=shown"))
	assert.Assert(t, strings.Contains(buf.String(), "file=a.png"))
}

func TestInfoIsDefault(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf)

	log.Info("started")
	assert.Assert(t, strings.Contains(buf.String(), "level=INFO"))
}
