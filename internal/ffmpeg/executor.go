package ffmpeg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"time"

	"github.com/backmassage/vidfixture/internal/config"
)

// waitDelay bounds how long Run waits for output pipes after the process is
// killed; grandchildren can otherwise hold them open.
const waitDelay = time.Second

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Args   []string // Arguments passed to the binary, for logging.
	Stdout string
	Stderr string
	Err    error // nil on exit status 0; otherwise classified (see package doc).
}

// Execute builds and runs the ffmpeg command for one job and blocks until it
// exits. With cfg.Timeout set the run is killed after that long. Output is
// captured; in verbose mode stderr is also tee'd to os.Stderr.
func Execute(ctx context.Context, cfg *config.Config, job config.Job, outputPath string) ExecResult {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var tee io.Writer
	if cfg.Verbose {
		tee = os.Stderr
	}
	return Run(ctx, cfg.FFmpegBin, Build(cfg, job, outputPath), tee)
}

// Run executes bin with args, capturing stdout and stderr. When tee is
// non-nil stderr is copied to it as it arrives.
func Run(ctx context.Context, bin string, args []string, tee io.Writer) ExecResult {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.WaitDelay = waitDelay

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	if tee != nil {
		cmd.Stderr = io.MultiWriter(&stderrBuf, tee)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	res := ExecResult{
		Args:   args,
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}
	if err != nil {
		res.Err = classify(ctx, bin, err, res.Stderr)
	}
	return res
}

// classify maps a cmd.Run error onto the package sentinels.
func classify(ctx context.Context, bin string, err error, stderr string) error {
	// A missing binary surfaces as exec.ErrNotFound for bare names (PATH
	// lookup) and as fs.ErrNotExist for explicit paths.
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrEncoderNotFound, bin)
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &InvocationError{ExitCode: exitCode, Stderr: stderr, Err: ErrEncoderTimeout}
	case ctx.Err() != nil:
		return &InvocationError{ExitCode: exitCode, Stderr: stderr, Err: fmt.Errorf("%w: %w", ErrEncoderFailed, ctx.Err())}
	case exitErr != nil:
		return &InvocationError{ExitCode: exitCode, Stderr: stderr, Err: ErrEncoderFailed}
	default:
		return &InvocationError{ExitCode: exitCode, Stderr: stderr, Err: fmt.Errorf("%w: %w", ErrEncoderFailed, err)}
	}
}
