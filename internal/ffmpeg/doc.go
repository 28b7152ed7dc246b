// Package ffmpeg builds and runs the ffmpeg invocation that renders one
// placeholder clip from two lavfi sources (a solid color and a sine tone).
//
// [Build] produces the argument list, [Execute] runs it with output captured
// into buffers, and failures come back classified as [ErrEncoderNotFound],
// [ErrEncoderFailed] or [ErrEncoderTimeout] so callers can report each case
// differently.
package ffmpeg
