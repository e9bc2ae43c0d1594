package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("booking id=%s created", "b-1")
	log.Warn("booking id=%s not found", "b-2")

	out := buf.String()
	assert.NotContains(t, out, "b-1")
	assert.Contains(t, out, "booking id=b-2 not found")
	assert.Contains(t, out, "level=WARN")
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNew_WritesFile(t *testing.T) {
	path := t.TempDir() + "/logs/app.log"

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Info("hello %d", 1)
	require.NoError(t, log.Close())
	require.NoError(t, log.Close())

	assert.FileExists(t, path)
}
