package render

import (
	"github.com/backmassage/watermarker/internal/config"
)

// Overlay placement. Both texts are drawn at the same opacity; the top
// text sits TopPadding pixels below the frame's top edge.
const (
	Opacity    = 0.3
	TopPadding = 10
)

// Job is one unit of batch work: a source video, its output path and the
// watermark settings. Jobs are built by the orchestrator and never
// modified afterwards.
type Job struct {
	Source     string
	Output     string
	TopText    string
	MiddleText string
	Color      string
	Size       int
}

// Style holds the batch-wide encoding and font settings that are not part
// of a Job.
type Style struct {
	FontFamily string
	FontFile   string
	VideoCodec string
	Preset     string
}

// StyleFromConfig extracts the Style from cfg.
func StyleFromConfig(cfg *config.Config) Style {
	return Style{
		FontFamily: cfg.FontFamily,
		FontFile:   cfg.FontFile,
		VideoCodec: cfg.VideoCodec,
		Preset:     cfg.Preset,
	}
}
