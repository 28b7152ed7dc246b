package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/vidfixture/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()
	l.Info("test message")
}

func TestNewWithWriters_RoutesErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	var out, errOut bytes.Buffer
	l, err := NewWithWriters(&cfg, &out, &errOut)
	require.NoError(t, err)

	l.Info("creating %s", "video.mp4")
	l.Warn("folder not found")
	l.Error("boom")
	l.Debug(false, "hidden")
	l.Debug(true, "shown")

	assert.Contains(t, out.String(), "[INFO] creating video.mp4")
	assert.Contains(t, out.String(), "[WARN] folder not found")
	assert.Contains(t, out.String(), "[DEBUG] shown")
	assert.NotContains(t, out.String(), "hidden")
	assert.NotContains(t, out.String(), "boom")
	assert.Contains(t, errOut.String(), "[ERROR] boom")
}

func TestNewWithWriters_ColoredLevelTag(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	t.Cleanup(func() {
		off := config.DefaultConfig()
		off.ColorMode = config.ColorNever
		_, _ = NewWithWriters(&off, &bytes.Buffer{}, &bytes.Buffer{})
	})

	var out bytes.Buffer
	l, err := NewWithWriters(&cfg, &out, &out)
	require.NoError(t, err)
	l.Success("done")
	assert.Contains(t, out.String(), "\033[1;92m[SUCCESS]\033[0m done")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorAlways
	cfg.LogFile = filepath.Join(dir, "logs", "vidfixture.log")
	l, err := NewWithWriters(&cfg, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	l.Info("to file")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
	assert.NotContains(t, string(b), "\033[", "log file must stay uncolored")
}

func TestNewLogger_BadFilePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(blocker, "nested", "x.log")
	_, err := NewLogger(&cfg)
	assert.Error(t, err)
}
