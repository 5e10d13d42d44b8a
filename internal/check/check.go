// Package check provides system diagnostics (--check mode), pre-batch
// dependency validation (CheckDeps) for ffmpeg, ffprobe and the drawtext
// filter, and a one-frame smoke render of the watermark style.
package check

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/backmassage/watermarker/internal/config"
	"github.com/backmassage/watermarker/internal/render"
)

// Sentinel errors returned by CheckDeps when a required tool or feature is
// missing, and by SmokeRender when the configured style does not render.
var (
	ErrFfmpegNotFound  = errors.New("ffmpeg not found")
	ErrFfprobeNotFound = errors.New("ffprobe not found")
	ErrNoDrawtext      = errors.New("ffmpeg has no drawtext filter (build with --enable-libfreetype)")
	ErrTestRenderFail  = errors.New("test render failed (check --font/--fontfile, --color and --codec)")
)

// probeTimeout bounds each diagnostic ffmpeg run.
const probeTimeout = 30 * time.Second

// Logger is the minimal logging interface needed by RunCheck.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow: prints the ffmpeg and ffprobe versions,
// drawtext availability and the result of a test render with the
// configured font, color and encoder. Informational only.
func RunCheck(cfg *config.Config, log Logger) {
	log.Info("=== System Check ===")

	checkBinary(log, "ffmpeg", cfg.FFmpegPath)
	checkBinary(log, "ffprobe", cfg.FFprobePath)

	if hasDrawtext(cfg.FFmpegPath) {
		log.Success("drawtext filter available")
	} else {
		log.Error("drawtext filter missing")
	}

	log.Info("Test render (%s, preset %s, font %s)...", cfg.VideoCodec, cfg.Preset, fontLabel(cfg))
	if stderr, err := testRender(cfg); err != nil {
		log.Error("Test render failed: %v", err)
		if hint := render.Diagnose(stderr); hint != "" {
			log.Error("  %s", hint)
		}
		log.Debug(cfg.Verbose, "ffmpeg output: %s", strings.TrimSpace(stderr))
	} else {
		log.Success("Test render works")
	}
}

// checkBinary verifies a tool resolves and logs its version string.
func checkBinary(log Logger, label, path string) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		log.Error("%s not found (%s)", label, path)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, resolved, "-version").Output()
	if err != nil {
		log.Warn("%s found but -version failed: %v", label, err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Success("%s: %s", label, firstLine)
}

// CheckDeps is the pre-batch validation: ffmpeg and ffprobe must resolve
// and ffmpeg must have drawtext. Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath(cfg.FFmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFfmpegNotFound, cfg.FFmpegPath)
	}
	if _, err := exec.LookPath(cfg.FFprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFfprobeNotFound, cfg.FFprobePath)
	}
	if !hasDrawtext(cfg.FFmpegPath) {
		return ErrNoDrawtext
	}
	return nil
}

// SmokeRender renders one frame with the configured font, color and
// encoder. A failure here predicts per-job failures; it does not stop the
// batch.
func SmokeRender(cfg *config.Config) error {
	stderr, err := testRender(cfg)
	if err == nil {
		return nil
	}
	if hint := render.Diagnose(stderr); hint != "" {
		return fmt.Errorf("%w: %s", ErrTestRenderFail, hint)
	}
	return ErrTestRenderFail
}

// --- internal helpers ---

// hasDrawtext reports whether ffmpeg lists the drawtext filter.
func hasDrawtext(ffmpegPath string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, ffmpegPath, "-hide_banner", "-filters").Output()
	if err != nil {
		return false
	}
	return parseHasFilter(string(out), "drawtext")
}

// parseHasFilter scans `ffmpeg -filters` output for name in the second
// column (" T.. drawtext  V->V  Draw text ...").
func parseHasFilter(listing, name string) bool {
	for _, line := range strings.Split(listing, "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 2 && fields[1] == name {
			return true
		}
	}
	return false
}

// testRender runs render.TestPattern with the configured style and color
// and returns ffmpeg's stderr.
func testRender(cfg *config.Config) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()
	args := render.TestPattern(cfg.TextColor, cfg.TextSize, render.StyleFromConfig(cfg)).GetArgs()
	res := render.Execute(ctx, cfg.FFmpegPath, args, false)
	return res.Stderr, res.Err
}

func fontLabel(cfg *config.Config) string {
	if cfg.FontFile != "" {
		return cfg.FontFile
	}
	return cfg.FontFamily + " Bold"
}
