package config

// This file implements CLI flag parsing and help text.
// Every flag is optional: with no arguments the tool runs the built-in jobs
// against <program dir>/public/videos. Negated flags are applied after Parse
// so Config defaults hold unless set.

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// Version is shown in --version and help; main overrides it with the
// -ldflags build value before calling ParseFlags.
var Version = "1.0.0-dev"

// ParseFlags parses args (normally os.Args[1:]) into cfg. When --jobs names a
// manifest it is loaded after parsing; source flags given explicitly still
// take precedence over manifest values. On --help or --version it prints and
// exits.
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("vidfixture", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	var negated negatedFlags

	definePathFlags(fs, cfg)
	defineSourceFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(fs)
		os.Exit(0)
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "vidfixture v"+Version)
		os.Exit(0)
	}

	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q (vidfixture takes flags only)", fs.Arg(0))
	}

	if cfg.JobsFile != "" {
		m, err := LoadManifest(cfg.JobsFile)
		if err != nil {
			return err
		}
		m.Apply(cfg, explicitFlags(fs))
	}
	return nil
}

// negatedFlags holds boolean flags that are applied after Parse.
type negatedFlags struct {
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// definePathFlags registers --base and --jobs.
func definePathFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.BaseDir, "base", cfg.BaseDir, "Videos directory (default: <program dir>/public/videos)")
	fs.StringVar(&cfg.JobsFile, "jobs", cfg.JobsFile, "YAML manifest of fixture jobs")
}

// defineSourceFlags registers the synthetic source parameters.
func defineSourceFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Source.Duration, "duration", cfg.Source.Duration, "Clip length in seconds")
	fs.StringVar(&cfg.Source.Color, "fill", cfg.Source.Color, "Frame color")
	fs.StringVar(&cfg.Source.Size, "size", cfg.Source.Size, "Frame size WxH")
	fs.IntVar(&cfg.Source.ToneHz, "tone", cfg.Source.ToneHz, "Sine tone frequency in Hz")
	fs.StringVar(&cfg.Source.PixFmt, "pix-fmt", cfg.Source.PixFmt, "Output pixel format")
}

// defineBehaviorFlags registers encoder, dry-run, skip and follow-up flags.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.FFmpegBin, "ffmpeg", cfg.FFmpegBin, "ffmpeg binary name or path")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-file ffmpeg time limit (0 = none)")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", cfg.SkipExisting, "Keep files that already exist")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "Preview only; do not run ffmpeg")
	fs.BoolVar(&cfg.DryRun, "d", false, "Same as --dry-run")
	fs.StringVar(&cfg.NextStep, "next-step", cfg.NextStep, "Command suggested after a clean run")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", false, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", "", "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies color overrides into cfg. --no-color wins.
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// explicitFlags returns the names of flags set on the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(fs *flag.FlagSet) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "vidfixture v" + Version + " - placeholder video generator for test fixtures"},
		{"", ""},
		{"  vidfixture [OPTIONS]", ""},
		{"", ""},
		{"Paths", ""},
		{"  --base <dir>", "Videos directory (default: <program dir>/public/videos)"},
		{"  --jobs <file.yaml>", "Fixture manifest (default: built-in list)"},
		{"", ""},
		{"Source", ""},
		{"  --duration <sec>", "Clip length (default: 3)"},
		{"  --fill <color>", "Frame color (default: blue)"},
		{"  --size <WxH>", "Frame size (default: 640x480)"},
		{"  --tone <hz>", "Sine tone frequency (default: 1000)"},
		{"  --pix-fmt <fmt>", "Output pixel format (default: yuv420p)"},
		{"", ""},
		{"Output & behavior", ""},
		{"  --ffmpeg <bin>", "ffmpeg binary (default: ffmpeg)"},
		{"  --timeout <dur>", "Per-file time limit, e.g. 30s (default: none)"},
		{"  --skip-existing", "Keep files that already exist"},
		{"  -d, --dry-run", "Preview only; do not run ffmpeg"},
		{"  --next-step <cmd>", "Follow-up hint (default: npm run seed:videos)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "System diagnostics (ffmpeg, lavfi, folders)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", strings.TrimSpace(l.desc))
	}
}
