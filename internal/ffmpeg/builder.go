package ffmpeg

import (
	"fmt"

	ffmpeggo "github.com/u2takey/ffmpeg-go"

	"github.com/backmassage/vidfixture/internal/config"
)

// ColorSource returns the lavfi color source spec, e.g. "color=c=blue:s=640x480:d=3".
func ColorSource(src config.Source, duration int) string {
	return fmt.Sprintf("color=c=%s:s=%s:d=%d", src.Color, src.Size, duration)
}

// ToneSource returns the lavfi sine source spec, e.g. "sine=f=1000:d=3".
func ToneSource(src config.Source, duration int) string {
	return fmt.Sprintf("sine=f=%d:d=%d", src.ToneHz, duration)
}

// Build constructs the ffmpeg argument list (without the program name) for
// one job. Both lavfi inputs share the job's duration; the output container
// is left to ffmpeg's extension detection and an existing file is overwritten.
func Build(cfg *config.Config, job config.Job, outputPath string) []string {
	d := job.EffectiveDuration(cfg.Source.Duration)

	video := ffmpeggo.Input(ColorSource(cfg.Source, d), ffmpeggo.KwArgs{"f": "lavfi"})
	audio := ffmpeggo.Input(ToneSource(cfg.Source, d), ffmpeggo.KwArgs{"f": "lavfi"})
	graph := ffmpeggo.Output(
		[]*ffmpeggo.Stream{video, audio},
		outputPath,
		ffmpeggo.KwArgs{"pix_fmt": cfg.Source.PixFmt},
	).OverWriteOutput()

	args := make([]string, 0, 24)
	args = append(args, "-hide_banner", "-nostdin")

	// Loglevel: info when verbose, otherwise error.
	if cfg.Verbose {
		args = append(args, "-loglevel", "info")
	} else {
		args = append(args, "-loglevel", "error")
	}

	return append(args, graph.GetArgs()...)
}
