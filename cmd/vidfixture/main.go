// Command vidfixture renders placeholder videos (a solid color with a sine
// tone) into the fixture folders under <program dir>/public/videos, ready for
// the seed step.
//
// It takes no required arguments. Flags override the source parameters, the
// base directory, or the job list (--jobs manifest.yaml); --check runs system
// diagnostics instead of generating.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/vidfixture/internal/check"
	"github.com/backmassage/vidfixture/internal/config"
	"github.com/backmassage/vidfixture/internal/display"
	"github.com/backmassage/vidfixture/internal/logging"
	"github.com/backmassage/vidfixture/internal/pipeline"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	config.Version = version
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "vidfixture: %v\n", err)
		return 1
	}

	programDir, err := config.ProgramDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vidfixture: cannot locate executable: %v\n", err)
		return 1
	}
	cfg.ResolveBaseDir(programDir)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "vidfixture: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vidfixture: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available; all output goes through log from here on.
	display.PrintBanner()
	log.Debug(cfg.Verbose, "vidfixture v%s (%s)", version, commit)

	if cfg.CheckOnly {
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0
	}

	// Phase 3: Signal handling. Cancelling the context kills a running
	// ffmpeg and stops the loop before the next job.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, stopping…")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Phase 4: Generate. Per-job failures and a missing videos directory are
	// reported on the console only; the exit status stays 0.
	_, _ = pipeline.Run(ctx, &cfg, log)
	return 0
}
