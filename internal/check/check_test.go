package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/vidfixture/internal/config"
	"github.com/backmassage/vidfixture/internal/testutil"
)

// recLogger records log lines as "LEVEL text".
type recLogger struct{ lines []string }

func (r *recLogger) add(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
}
func (r *recLogger) Info(f string, a ...interface{})    { r.add("INFO", f, a...) }
func (r *recLogger) Success(f string, a ...interface{}) { r.add("SUCCESS", f, a...) }
func (r *recLogger) Warn(f string, a ...interface{})    { r.add("WARN", f, a...) }
func (r *recLogger) Error(f string, a ...interface{})   { r.add("ERROR", f, a...) }
func (r *recLogger) Debug(v bool, f string, a ...interface{}) {
	if v {
		r.add("DEBUG", f, a...)
	}
}
func (r *recLogger) text() string { return strings.Join(r.lines, "\n") }

func TestInstallHints(t *testing.T) {
	hints := InstallHints()
	require.Len(t, hints, 3)
	assert.Contains(t, hints[0], "ffmpeg.org/download")
	assert.Contains(t, hints[1], "brew install ffmpeg")
	assert.Contains(t, hints[2], "apt-get install ffmpeg")
}

func TestLogInstallHints(t *testing.T) {
	var log recLogger
	LogInstallHints(&log, "ffmpeg")
	require.Len(t, log.lines, 4)
	assert.Equal(t, "ERROR ffmpeg not found. Please install ffmpeg:", log.lines[0])
}

func TestRunCheck_MissingFfmpeg(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FFmpegBin = "vidfixture-no-such-ffmpeg"
	cfg.BaseDir = t.TempDir()

	var log recLogger
	assert.False(t, RunCheck(&cfg, &log))
	assert.Contains(t, log.text(), "brew install ffmpeg")
	assert.NotContains(t, log.text(), "lavfi", "lavfi test needs a binary")
}

func TestRunCheck_FakeFfmpeg(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FFmpegBin = testutil.FakeFFmpeg(t, 0, "", 0)
	cfg.BaseDir = t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(cfg.BaseDir, "action-movie-1"), 0o755))

	var log recLogger
	assert.True(t, RunCheck(&cfg, &log))
	out := log.text()
	assert.Contains(t, out, "SUCCESS lavfi sources work")
	assert.Contains(t, out, "INFO   action-movie-1/ -> video.mp4")
	assert.Contains(t, out, "WARN   tutorial-1/ missing (job will be skipped)")
	assert.Contains(t, out, "SUCCESS All checks passed")
	assert.Contains(t, testutil.FakeArgs(t, cfg.FFmpegBin), "null")
}

func TestRunCheck_LavfiFailure(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FFmpegBin = testutil.FakeFFmpeg(t, 1, "No such filter: 'sine'", 0)
	cfg.BaseDir = t.TempDir()

	var log recLogger
	assert.False(t, RunCheck(&cfg, &log))
	assert.Contains(t, log.text(), "No such filter")
}

func TestRunCheck_MissingBaseDir(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FFmpegBin = testutil.FakeFFmpeg(t, 0, "", 0)
	cfg.BaseDir = filepath.Join(t.TempDir(), "public", "videos")

	var log recLogger
	assert.False(t, RunCheck(&cfg, &log))
	assert.Contains(t, log.text(), "Videos directory not found")
}

func TestLavfiTestArgs(t *testing.T) {
	args := lavfiTestArgs(config.DefaultConfig().Source)
	joined := strings.Join(args, " ")
	assert.Contains(t, joined, "-f lavfi -i color=c=blue:s=640x480:d=1")
	assert.Contains(t, joined, "-f lavfi -i sine=f=1000:d=1")
	assert.True(t, strings.HasSuffix(joined, "-f null -"))
}
