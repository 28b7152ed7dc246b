// Package check provides system diagnostics (--check mode) and the ffmpeg
// install guidance printed when the encoder is missing.
package check

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/backmassage/vidfixture/internal/config"
	"github.com/backmassage/vidfixture/internal/ffmpeg"
)

// lavfiTestTimeout bounds the synthetic test render.
const lavfiTestTimeout = 30 * time.Second

// Logger is the minimal logging interface needed by this package.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// InstallHints returns per-platform ffmpeg install instructions.
func InstallHints() []string {
	return []string{
		"Windows: https://ffmpeg.org/download.html",
		"Mac: brew install ffmpeg",
		"Linux: sudo apt-get install ffmpeg",
	}
}

// LogInstallHints writes the "not found" message followed by InstallHints.
func LogInstallHints(log Logger, bin string) {
	log.Error("%s not found. Please install ffmpeg:", bin)
	for _, h := range InstallHints() {
		log.Error("   %s", h)
	}
}

// RunCheck runs the --check flow: ffmpeg availability and version, a short
// lavfi render proving both synthetic sources work, and the existence of the
// base directory and every job folder. Returns false if anything a real run
// needs is missing; missing job folders only warn, since the generator skips
// them.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := true
	if checkFfmpeg(cfg, log) {
		ok = checkLavfi(cfg, log) && ok
	} else {
		ok = false
	}
	ok = checkFolders(cfg, log) && ok

	if ok {
		log.Success("All checks passed")
	}
	return ok
}

// checkFfmpeg verifies the configured binary resolves and logs its version string.
func checkFfmpeg(cfg *config.Config, log Logger) bool {
	path, err := exec.LookPath(cfg.FFmpegBin)
	if err != nil {
		LogInstallHints(log, cfg.FFmpegBin)
		return false
	}
	log.Debug(cfg.Verbose, "ffmpeg path: %s", path)

	res := ffmpeg.Run(context.Background(), path, []string{"-hide_banner", "-version"}, nil)
	if res.Err != nil {
		log.Warn("ffmpeg found but -version failed: %v", res.Err)
		return true
	}
	firstLine := strings.TrimSpace(res.Stdout)
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("ffmpeg: %s", firstLine)
	return true
}

// checkLavfi renders a tenth of a second from both lavfi sources to the null
// muxer.
func checkLavfi(cfg *config.Config, log Logger) bool {
	log.Info("Testing lavfi color + sine sources...")

	ctx, cancel := context.WithTimeout(context.Background(), lavfiTestTimeout)
	defer cancel()

	res := ffmpeg.Run(ctx, cfg.FFmpegBin, lavfiTestArgs(cfg.Source), nil)
	if res.Err != nil {
		log.Error("lavfi test render failed: %v", res.Err)
		for _, l := range ffmpeg.StderrTail(res.Stderr, 5) {
			log.Error("  %s", l)
		}
		return false
	}
	log.Success("lavfi sources work (%s, %d Hz tone, %s)", cfg.Source.Size, cfg.Source.ToneHz, cfg.Source.PixFmt)
	return true
}

// lavfiTestArgs returns the arguments for the null-muxer test render.
func lavfiTestArgs(src config.Source) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", ffmpeg.ColorSource(src, 1),
		"-f", "lavfi", "-i", ffmpeg.ToneSource(src, 1),
		"-t", "0.1",
		"-pix_fmt", src.PixFmt,
		"-f", "null", "-",
	}
}

// checkFolders reports the base directory and each job folder.
func checkFolders(cfg *config.Config, log Logger) bool {
	if !isDir(cfg.BaseDir) {
		log.Error("Videos directory not found: %s", cfg.BaseDir)
		return false
	}
	log.Success("Videos directory: %s", cfg.BaseDir)

	for _, j := range cfg.Jobs {
		if isDir(filepath.Join(cfg.BaseDir, j.Folder)) {
			log.Info("  %s/ -> %s", j.Folder, j.File)
		} else {
			log.Warn("  %s/ missing (job will be skipped)", j.Folder)
		}
	}
	return true
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
