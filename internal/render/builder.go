package render

import (
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Overlay positions in drawtext expression syntax.
const (
	centerX = "(w-text_w)/2"
	middleY = "(h-text_h)/2"
)

// Build returns the ffmpeg-go output stream for job: the source video with
// a top and a middle drawtext overlay, encoded with style's codec and
// preset and written to output. fps, when non-empty, pins the output frame
// rate to the source's. Audio is stream-copied when hasAudio is set.
// An empty text omits its overlay.
func Build(job Job, output, fps string, hasAudio bool, style Style) *ffmpeg.Stream {
	in := ffmpeg.Input(job.Source)

	video := in
	if job.TopText != "" {
		video = video.Filter("drawtext", ffmpeg.Args{}, drawtext(job, job.TopText, strconv.Itoa(TopPadding), style))
	}
	if job.MiddleText != "" {
		video = video.Filter("drawtext", ffmpeg.Args{}, drawtext(job, job.MiddleText, middleY, style))
	}

	kw := ffmpeg.KwArgs{
		"c:v":    style.VideoCodec,
		"preset": style.Preset,
	}
	if fps != "" {
		kw["r"] = fps
	}
	streams := []*ffmpeg.Stream{video}
	if hasAudio {
		streams = append(streams, in.Audio())
		kw["c:a"] = "copy"
	}

	return ffmpeg.Output(streams, output, kw).OverWriteOutput()
}

// drawtext returns the filter options for one overlay. Text is drawn
// literally; ffmpeg-go escapes option values for the filter graph.
func drawtext(job Job, text, y string, style Style) ffmpeg.KwArgs {
	kw := ffmpeg.KwArgs{
		"text":      text,
		"expansion": "none",
		"fontcolor": job.Color,
		"fontsize":  strconv.Itoa(job.Size),
		"alpha":     strconv.FormatFloat(Opacity, 'g', -1, 64),
		"x":         centerX,
		"y":         y,
	}
	if style.FontFile != "" {
		kw["fontfile"] = style.FontFile
	} else {
		kw["font"] = style.FontFamily + ":style=Bold"
	}
	return kw
}

// TestPattern returns a one-frame lavfi render with both overlays and a
// null output. It exercises drawtext, the font and the encoder without
// touching the filesystem.
func TestPattern(color string, size int, style Style) *ffmpeg.Stream {
	job := Job{TopText: "watermarker", MiddleText: "check", Color: color, Size: size}
	video := ffmpeg.Input("color=black:s=320x240:d=0.1", ffmpeg.KwArgs{"f": "lavfi"}).
		Filter("drawtext", ffmpeg.Args{}, drawtext(job, job.TopText, strconv.Itoa(TopPadding), style)).
		Filter("drawtext", ffmpeg.Args{}, drawtext(job, job.MiddleText, middleY, style))
	return video.Output("-", ffmpeg.KwArgs{
		"c:v":    style.VideoCodec,
		"preset": style.Preset,
		"f":      "null",
	})
}
