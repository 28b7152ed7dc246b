// Package testutil provides a stand-in ffmpeg for tests that exercise the
// subprocess path without a real encoder installed.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// FakeFFmpeg writes an executable shell script that behaves like a minimal
// ffmpeg: it records its arguments to <dir>/args.txt, writes a small payload
// to the first argument with a video extension, prints stderr and exits with
// exitCode. A non-zero exitCode skips the write. sleep > 0 delays the exit.
// It returns the script path. The test is skipped on Windows.
func FakeFFmpeg(t testing.TB, exitCode int, stderr string, sleep int) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake ffmpeg is a POSIX shell script")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "ffmpeg")
	script := fmt.Sprintf(`#!/bin/sh
printf '%%s\n' "$@" >> %q
out=""
for a in "$@"; do
  case "$a" in
    *.mp4|*.webm|*.mkv|*.mov|*.avi) out="$a" ;;
  esac
done
if [ %d -gt 0 ]; then sleep %d; fi
printf '%%s\n' %q >&2
if [ %d -eq 0 ] && [ -n "$out" ]; then printf 'fake-fixture' > "$out"; fi
exit %d
`, filepath.Join(dir, "args.txt"), sleep, sleep, stderr, exitCode, exitCode)

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake ffmpeg: %v", err)
	}
	return path
}

// FakeArgs returns the arguments recorded by a FakeFFmpeg script, one per
// line, or "" when it never ran.
func FakeArgs(t testing.TB, fakePath string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(filepath.Dir(fakePath), "args.txt"))
	if err != nil {
		return ""
	}
	return string(b)
}
