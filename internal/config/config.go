// Package config holds runtime configuration: defaults, CLI flag parsing, the
// fixture job list, and validation. The defaults produce the fixture set the
// seed step expects, so a bare invocation needs no flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// VideosSubdir is the base directory relative to the program location.
var VideosSubdir = filepath.Join("public", "videos")

// Source describes the synthetic lavfi inputs shared by every job.
type Source struct {
	Color    string // lavfi color source, default "blue".
	Size     string // Frame size WxH, default "640x480".
	ToneHz   int    // lavfi sine frequency, default 1000.
	Duration int    // Seconds; used when a job leaves Duration at 0. Default 3.
	PixFmt   string // Output pixel format, default "yuv420p".
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by a manifest, and then mutated by [ParseFlags] before
// being passed (by pointer) to packages that need it.
type Config struct {
	// Paths.
	BaseDir  string // Default: <program dir>/public/videos.
	JobsFile string // Optional YAML manifest replacing the built-in jobs.

	// Work.
	Jobs   []Job
	Source Source

	// Encoder.
	FFmpegBin string        // Default: "ffmpeg" (resolved via PATH).
	Timeout   time.Duration // Per-job limit. Zero waits forever.

	// Behavior flags.
	DryRun       bool
	SkipExisting bool   // Off by default: every run overwrites.
	NextStep     string // Suggested follow-up printed after a clean run.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns the built-in configuration. BaseDir is
// left empty; [ResolveBaseDir] fills it from the executable location.
func DefaultConfig() Config {
	return Config{
		Jobs: DefaultJobs(),
		Source: Source{
			Color:    "blue",
			Size:     "640x480",
			ToneHz:   1000,
			Duration: 3,
			PixFmt:   "yuv420p",
		},
		FFmpegBin:    "ffmpeg",
		SkipExisting: false,
		NextStep:     "npm run seed:videos",
		ColorMode:    ColorAuto,
	}
}

// ProgramDir returns the directory holding the running executable with
// symlinks resolved.
func ProgramDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ResolveBaseDir sets BaseDir to <programDir>/public/videos unless it was
// already set (e.g. by --base).
func (c *Config) ResolveBaseDir(programDir string) {
	if c.BaseDir != "" {
		c.BaseDir = NormalizeDirArg(c.BaseDir)
		return
	}
	c.BaseDir = filepath.Join(programDir, VideosSubdir)
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

var (
	reFrameSize = regexp.MustCompile(`^[1-9][0-9]*x[1-9][0-9]*$`)
	reLavfiWord = regexp.MustCompile(`^[A-Za-z0-9#@.]+$`)
	rePixFmt    = regexp.MustCompile(`^[a-z0-9_]+$`)
)

// Validate checks enum fields, source parameters and every job. It does not
// touch the filesystem; missing directories are handled at run time.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if err := c.Source.validate(); err != nil {
		return err
	}
	if strings.TrimSpace(c.FFmpegBin) == "" {
		return errors.New("ffmpeg binary must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative (got %s)", c.Timeout)
	}

	if len(c.Jobs) == 0 {
		return errors.New("no fixture jobs configured")
	}
	for i, j := range c.Jobs {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
	}
	return nil
}

// validate rejects values that would break the lavfi filter syntax.
func (s Source) validate() error {
	if !reLavfiWord.MatchString(s.Color) {
		return fmt.Errorf("invalid color %q (use a name like 'blue' or a hex value like '0x1e90ff')", s.Color)
	}
	if !reFrameSize.MatchString(s.Size) {
		return fmt.Errorf("invalid size %q (use WxH, e.g. 640x480)", s.Size)
	}
	if s.ToneHz <= 0 {
		return fmt.Errorf("tone frequency must be positive (got %d)", s.ToneHz)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be positive (got %d)", s.Duration)
	}
	if !rePixFmt.MatchString(s.PixFmt) {
		return fmt.Errorf("invalid pixel format %q", s.PixFmt)
	}
	return nil
}
