package ffmpeg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/vidfixture/internal/config"
)

func TestSources(t *testing.T) {
	src := config.DefaultConfig().Source
	assert.Equal(t, "color=c=blue:s=640x480:d=3", ColorSource(src, 3))
	assert.Equal(t, "sine=f=1000:d=3", ToneSource(src, 3))
}

func TestBuild_DefaultJob(t *testing.T) {
	cfg := config.DefaultConfig()
	out := filepath.Join("public", "videos", "action-movie-1", "video.mp4")

	args := Build(&cfg, cfg.Jobs[0], out)

	require.GreaterOrEqual(t, len(args), 4)
	assert.Equal(t, []string{"-hide_banner", "-nostdin", "-loglevel", "error"}, args[:4])
	assertLavfiInput(t, args, "color=c=blue:s=640x480:d=3")
	assertLavfiInput(t, args, "sine=f=1000:d=3")
	assertPair(t, args, "-pix_fmt", "yuv420p")
	assert.Contains(t, args, "-y")
	assert.Contains(t, args, out)
	assert.NotContains(t, args, "ffmpeg", "program name is not part of the args")
}

func TestBuild_MapsBothInputs(t *testing.T) {
	cfg := config.DefaultConfig()
	args := Build(&cfg, cfg.Jobs[1], "video.webm")
	assertPair(t, args, "-map", "0")
	assertPair(t, args, "-map", "1")
}

func TestBuild_JobDurationOverridesDefault(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Source = config.Source{Color: "red", Size: "320x240", ToneHz: 440, Duration: 3, PixFmt: "yuv444p"}
	job := config.Job{Folder: "a", File: "clip.mkv", Duration: 8}

	args := Build(&cfg, job, "clip.mkv")

	assertLavfiInput(t, args, "color=c=red:s=320x240:d=8")
	assertLavfiInput(t, args, "sine=f=440:d=8")
	assertPair(t, args, "-pix_fmt", "yuv444p")
}

func TestBuild_VerboseLogLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Verbose = true
	args := Build(&cfg, cfg.Jobs[0], "video.mp4")
	assertPair(t, args, "-loglevel", "info")
}

// assertLavfiInput checks that src appears as "-f lavfi -i <src>".
func assertLavfiInput(t *testing.T, args []string, src string) {
	t.Helper()
	for i := 3; i < len(args); i++ {
		if args[i] == src && args[i-1] == "-i" && args[i-2] == "lavfi" && args[i-3] == "-f" {
			return
		}
	}
	t.Errorf("missing lavfi input %q in %v", src, args)
}

func assertPair(t *testing.T, args []string, flag, value string) {
	t.Helper()
	for i := 0; i+1 < len(args); i++ {
		if args[i] == flag && args[i+1] == value {
			return
		}
	}
	t.Errorf("missing %s %s in %v", flag, value, args)
}
