package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/backmassage/watermarker/internal/config"
	"github.com/backmassage/watermarker/internal/naming"
	"github.com/backmassage/watermarker/internal/probe"
)

// Logger is the logging the renderer needs.
type Logger interface {
	Debug(bool, string, ...interface{})
}

// Plan is what Render would do for a Job: the probed source properties and
// the ffmpeg arguments.
type Plan struct {
	Output     string
	Resolution string
	FrameRate  string
	VideoCodec string
	AudioCodec string // Copied as-is; "" without audio.
	HasAudio   bool
	Duration   float64
	Size       int64
	BitRate    int64
	Args       []string
}

// FFmpeg renders Jobs with external ffprobe and ffmpeg binaries.
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	verbose     bool
	style       Style
	log         Logger
}

// New returns an FFmpeg renderer using the binaries and style from cfg.
func New(cfg *config.Config, log Logger) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  cfg.FFmpegPath,
		ffprobePath: cfg.FFprobePath,
		verbose:     cfg.Verbose,
		style:       StyleFromConfig(cfg),
		log:         log,
	}
}

// Plan probes job.Source and builds the ffmpeg arguments without running
// them. A source that cannot be opened is an error.
func (f *FFmpeg) Plan(ctx context.Context, job Job) (*Plan, error) {
	pr, err := probe.Probe(ctx, f.ffprobePath, job.Source)
	if err != nil {
		return nil, fmt.Errorf("open source: %w", err)
	}

	out := naming.SanitizePath(job.Output)
	stream := Build(job, out, pr.FrameRate(), pr.HasAudio(), f.style)
	return &Plan{
		Output:     out,
		Resolution: pr.Resolution(),
		FrameRate:  pr.FrameRate(),
		VideoCodec: pr.VideoCodec(),
		AudioCodec: pr.AudioCodec(),
		HasAudio:   pr.HasAudio(),
		Duration:   pr.Format.Duration,
		Size:       pr.Format.Size,
		BitRate:    pr.Format.BitRate,
		Args:       stream.GetArgs(),
	}, nil
}

// Render writes the watermarked copy of job.Source to job.Output. It
// returns nil only when ffmpeg exited cleanly.
func (f *FFmpeg) Render(ctx context.Context, job Job) error {
	plan, err := f.Plan(ctx, job)
	if err != nil {
		return err
	}
	f.log.Debug(f.verbose, "Source: %s %s, %s fps, audio=%s", plan.VideoCodec, plan.Resolution, plan.FrameRate, audioLabel(plan))

	res := Execute(ctx, f.ffmpegPath, plan.Args, f.verbose)
	f.log.Debug(f.verbose, "ffmpeg %s", strings.Join(res.Args, " "))
	if res.Err != nil {
		return &RenderError{
			Path: plan.Output,
			Hint: Diagnose(res.Stderr),
			Tail: tail(res.Stderr, 3),
			Err:  res.Err,
		}
	}
	return nil
}

func audioLabel(p *Plan) string {
	switch {
	case !p.HasAudio:
		return "none"
	case p.AudioCodec == "":
		return "copy"
	}
	return p.AudioCodec + " (copy)"
}
