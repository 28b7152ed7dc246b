package ffmpeg

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three ways an invocation can fail.
var (
	ErrEncoderNotFound = errors.New("ffmpeg not found")
	ErrEncoderFailed   = errors.New("ffmpeg failed")
	ErrEncoderTimeout  = errors.New("ffmpeg timed out")
)

// InvocationError describes a run that started but did not succeed.
// ExitCode is -1 when the process never reported one (spawn error, kill).
type InvocationError struct {
	ExitCode int
	Stderr   string
	Err      error // ErrEncoderFailed or ErrEncoderTimeout, possibly wrapping the cause.
}

func (e *InvocationError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%v (exit status %d)", e.Err, e.ExitCode)
	}
	return e.Err.Error()
}

func (e *InvocationError) Unwrap() error { return e.Err }

// StderrTail returns at most the last n non-empty lines of captured stderr.
func StderrTail(stderr string, n int) []string {
	trimmed := strings.TrimSpace(stderr)
	if trimmed == "" || n <= 0 {
		return nil
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimRight(l, "\r"); strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}
