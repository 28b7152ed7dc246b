package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/backmassage/vidfixture/internal/check"
	"github.com/backmassage/vidfixture/internal/config"
	"github.com/backmassage/vidfixture/internal/display"
	"github.com/backmassage/vidfixture/internal/ffmpeg"
	"github.com/backmassage/vidfixture/internal/logging"
)

// stderrTailLines is how much ffmpeg output is shown for a failed job.
const stderrTailLines = 20

var (
	// ErrMissingDirectory means the base videos directory does not exist.
	ErrMissingDirectory = errors.New("videos directory not found")
	// ErrMissingJobFolder means a job's target folder does not exist.
	ErrMissingJobFolder = errors.New("folder not found")
)

// execute runs one ffmpeg job. Tests replace it to observe invocations.
var execute = ffmpeg.Execute

// Run is the top-level batch entry point. It verifies the base directory,
// processes each job sequentially, logs the summary, and returns aggregate
// stats. The only error returned is ErrMissingDirectory (wrapped); per-job
// problems are logged and counted.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) (RunStats, error) {
	stats := RunStats{Total: len(cfg.Jobs)}

	if err := requireDir(cfg.BaseDir, ErrMissingDirectory); err != nil {
		log.Error("Videos directory not found: %s", cfg.BaseDir)
		return stats, err
	}

	log.Info("Creating test video files...")
	log.Debug(cfg.Verbose, "Base: %s", cfg.BaseDir)
	log.Debug(cfg.Verbose, "Source: %s + %s, pix_fmt %s",
		ffmpeg.ColorSource(cfg.Source, cfg.Source.Duration),
		ffmpeg.ToneSource(cfg.Source, cfg.Source.Duration),
		cfg.Source.PixFmt)
	if cfg.DryRun {
		log.Warn("DRY RUN - ffmpeg will not be run")
	}
	log.Blank()

	for i, job := range cfg.Jobs {
		if ctx.Err() != nil {
			log.Warn("Interrupted, %s not processed", display.Plural(len(cfg.Jobs)-i, "job", "jobs"))
			break
		}
		stats.Current = i + 1
		processJob(ctx, cfg, log, job, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats, nil
}

// processJob handles one fixture: folder check → skip check → ffmpeg → stats.
func processJob(ctx context.Context, cfg *config.Config, log *logging.Logger, job config.Job, stats *RunStats) {
	folderPath := filepath.Join(cfg.BaseDir, job.Folder)
	if err := requireDir(folderPath, ErrMissingJobFolder); err != nil {
		log.Warn("Folder not found: %s", job.Folder)
		log.Debug(cfg.Verbose, "  %v", err)
		stats.Skipped++
		return
	}

	outputPath := filepath.Join(folderPath, job.File)

	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warn("Skip (exists): %s", job.File)
			stats.Skipped++
			return
		}
	}

	log.Info("Creating: %s", outputPath)

	if cfg.DryRun {
		log.Debug(cfg.Verbose, "  %s %s", cfg.FFmpegBin, strings.Join(ffmpeg.Build(cfg, job, outputPath), " "))
		log.Success("[DRY] Would create: %s", job.File)
		stats.Created++
		return
	}

	res := execute(ctx, cfg, job, outputPath)
	if res.Err != nil {
		stats.Failed++
		reportFailure(cfg, log, job, res)
		return
	}

	stats.Created++
	if fi, err := os.Stat(outputPath); err == nil {
		stats.TotalOutputBytes += fi.Size()
		log.Success("Created: %s (%s)", job.File, display.FormatBytes(fi.Size()))
	} else {
		log.Success("Created: %s", job.File)
	}
}

// reportFailure logs a failed job. A missing encoder gets install guidance
// instead of ffmpeg output, since there is none.
func reportFailure(cfg *config.Config, log *logging.Logger, job config.Job, res ffmpeg.ExecResult) {
	if errors.Is(res.Err, ffmpeg.ErrEncoderNotFound) {
		check.LogInstallHints(log, cfg.FFmpegBin)
		return
	}

	log.Error("Error creating %s: %v", job.File, res.Err)
	if errors.Is(res.Err, ffmpeg.ErrEncoderTimeout) {
		log.Error("  gave up after %s", cfg.Timeout)
	}
	var inv *ffmpeg.InvocationError
	if errors.As(res.Err, &inv) {
		tail := ffmpeg.StderrTail(inv.Stderr, stderrTailLines)
		if len(tail) > 0 {
			log.Error("Last ffmpeg output:")
			for _, l := range tail {
				log.Error("  %s", l)
			}
		}
	}
	log.Debug(cfg.Verbose, "  args: %s", strings.Join(res.Args, " "))
}

// requireDir returns kind wrapped with the path unless path is a directory.
func requireDir(path string, kind error) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", kind, path, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", kind, path)
	}
	return nil
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Blank()
	log.Info("Summary:")
	log.Info("   Created: %d", stats.Created)
	log.Info("   Failed: %d", stats.Failed)
	log.Debug(cfg.Verbose, "   Skipped: %d of %d", stats.Skipped, stats.Total)

	if cfg.DryRun {
		return
	}
	if stats.TotalOutputBytes > 0 {
		log.Debug(cfg.Verbose, "   Written: %s", display.FormatBytes(stats.TotalOutputBytes))
	}
	if stats.Clean() && cfg.NextStep != "" {
		log.Blank()
		log.Success("Done! Now run: %s", cfg.NextStep)
	}
}
