// Package render applies the two text watermarks to a single video.
//
// A render is one probe (open the source, read frame rate and audio
// presence), one ffmpeg filter graph built with ffmpeg-go (two drawtext
// overlays at fixed opacity), and one ffmpeg run. The package knows
// nothing about batches: the orchestrator hands it a [Job] and logs the
// returned error.
//
// Files:
//   - job.go: Job, Style and the overlay constants
//   - builder.go: Build, the ffmpeg-go stream graph
//   - executor.go: Execute, running ffmpeg with stderr capture
//   - errors.go: Diagnose and RenderError
//   - render.go: FFmpeg, the Renderer used by the batch
package render
