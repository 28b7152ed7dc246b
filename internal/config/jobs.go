package config

// This file defines the fixture job list: the built-in defaults and the
// optional YAML manifest that replaces them.

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Job is one fixture to synthesize: <base>/<Folder>/<File>.
type Job struct {
	Folder   string `yaml:"folder"`
	File     string `yaml:"file"`
	Duration int    `yaml:"duration,omitempty"` // Seconds; 0 uses Source.Duration.
}

// DefaultJobs returns the built-in job list in processing order.
func DefaultJobs() []Job {
	return []Job{
		{Folder: "action-movie-1", File: "video.mp4"},
		{Folder: "tutorial-1", File: "video.webm"},
	}
}

// Output container extensions ffmpeg can pick a muxer for on its own
// (lowercase, with leading dot).
var containerExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".webm": true,
	".mov":  true,
	".avi":  true,
	".m4v":  true,
	".flv":  true,
	".ts":   true,
	".mpg":  true,
	".mpeg": true,
	".ogv":  true,
	".wmv":  true,
}

// EffectiveDuration returns the job's duration or def when unset.
func (j Job) EffectiveDuration(def int) int {
	if j.Duration > 0 {
		return j.Duration
	}
	return def
}

// Validate checks that Folder is a single path element and File has a
// container extension.
func (j Job) Validate() error {
	if err := validateName("folder", j.Folder); err != nil {
		return err
	}
	if err := validateName("file", j.File); err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(j.File))
	if !containerExtensions[ext] {
		return fmt.Errorf("file %q: unsupported container extension %q", j.File, ext)
	}
	if j.Duration < 0 {
		return fmt.Errorf("file %q: duration must not be negative", j.File)
	}
	return nil
}

func validateName(kind, name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%s must not be empty", kind)
	case name == "." || name == "..":
		return fmt.Errorf("%s %q is not allowed", kind, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%s %q must not contain path separators", kind, name)
	}
	return nil
}

// Manifest is the on-disk YAML form of a job list. Zero-valued source fields
// leave the corresponding defaults untouched.
type Manifest struct {
	Duration int    `yaml:"duration"`
	Color    string `yaml:"color"`
	Size     string `yaml:"size"`
	Tone     int    `yaml:"tone"`
	PixFmt   string `yaml:"pix_fmt"`
	Jobs     []Job  `yaml:"jobs"`
}

// LoadManifest reads and decodes a YAML manifest. Unknown keys are rejected
// so typos do not silently fall back to defaults.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	if len(m.Jobs) == 0 {
		return nil, errors.New("manifest " + path + " lists no jobs")
	}
	return &m, nil
}

// Apply overlays the manifest onto cfg. Source fields named in explicit (by
// flag name) were set on the command line and win over the manifest.
func (m *Manifest) Apply(cfg *Config, explicit map[string]bool) {
	cfg.Jobs = append([]Job(nil), m.Jobs...)

	if m.Duration != 0 && !explicit["duration"] {
		cfg.Source.Duration = m.Duration
	}
	if m.Color != "" && !explicit["fill"] {
		cfg.Source.Color = m.Color
	}
	if m.Size != "" && !explicit["size"] {
		cfg.Source.Size = m.Size
	}
	if m.Tone != 0 && !explicit["tone"] {
		cfg.Source.ToneHz = m.Tone
	}
	if m.PixFmt != "" && !explicit["pix-fmt"] {
		cfg.Source.PixFmt = m.PixFmt
	}
}
