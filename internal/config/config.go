// Package config holds runtime configuration: defaults, environment and
// YAML overrides, CLI flag parsing, the interactive prompt front end, and
// validation. The batch orchestrator and renderer only ever see a populated
// [Config]; none of them read input directly.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [ApplyEnv], then [ParseFlags] (which also merges a --config file),
// and optionally [Prompt], before being passed by pointer to the packages
// that need it.
type Config struct {
	// Paths (positional args, config file or prompt). Sanitized by consumers.
	InputDir  string
	OutputDir string

	// Watermark text and style.
	TopText    string
	MiddleText string
	TextColor  string // Any ffmpeg color name or #RRGGBB. Default: "white".
	TextSize   int    // Font size in pixels. Default: 24.
	FontFamily string // fontconfig family, rendered bold. Default: "Sans".
	FontFile   string // Explicit font file; overrides FontFamily when set.

	// Encoding.
	VideoCodec  string // Default: "libx264".
	Preset      string // Default: "ultrafast".
	FFmpegPath  string // Default: "ffmpeg" (resolved on PATH).
	FFprobePath string // Default: "ffprobe".

	// Batch behavior.
	Workers         int           // Default: runtime.NumCPU().
	JobTimeout      time.Duration // Default: 1h. Zero disables the per-job limit.
	SkipExisting    bool          // Skip jobs whose output already exists.
	CreateOutputDir bool          // MkdirAll the output dir before the batch.
	DryRun          bool

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional rotating JSON log file.
	CheckOnly bool      // Run --check diagnostics and exit.

	// Front end.
	ConfigFile  string // --config YAML file.
	Interactive bool   // Set when no paths were given; main runs the prompt.
}

// Defaults shared by flag help text and DefaultConfig.
const (
	DefaultTextColor  = "white"
	DefaultTextSize   = 24
	DefaultFontFamily = "Sans"
	DefaultVideoCodec = "libx264"
	DefaultPreset     = "ultrafast"
	DefaultJobTimeout = time.Hour
)

// DefaultConfig returns a Config with every default applied. The worker
// count is sized to the number of processing units on this machine.
func DefaultConfig() Config {
	return Config{
		TextColor:   DefaultTextColor,
		TextSize:    DefaultTextSize,
		FontFamily:  DefaultFontFamily,
		VideoCodec:  DefaultVideoCodec,
		Preset:      DefaultPreset,
		FFmpegPath:  "ffmpeg",
		FFprobePath: "ffprobe",
		Workers:     runtime.NumCPU(),
		JobTimeout:  DefaultJobTimeout,
		ColorMode:   ColorAuto,
	}
}

// Validate checks enum and numeric fields. When not in CheckOnly mode it
// also requires both directories and at least one watermark text.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if strings.TrimSpace(c.FFmpegPath) == "" || strings.TrimSpace(c.FFprobePath) == "" {
		return errors.New("ffmpeg and ffprobe paths must not be empty")
	}

	if c.CheckOnly {
		return nil
	}

	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1 (got %d)", c.Workers)
	}
	if c.JobTimeout < 0 {
		return fmt.Errorf("job timeout must not be negative (got %s)", c.JobTimeout)
	}
	if c.TextSize <= 0 {
		return fmt.Errorf("text size must be a positive whole number (got %d)", c.TextSize)
	}
	if strings.TrimSpace(c.TextColor) == "" {
		return errors.New("text color must not be empty")
	}
	if c.VideoCodec == "" || c.Preset == "" {
		return errors.New("video codec and preset must not be empty")
	}
	if c.TopText == "" && c.MiddleText == "" {
		return errors.New("need at least one watermark text (top or middle)")
	}
	if strings.TrimSpace(c.InputDir) == "" || strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("need exactly input_dir and output_dir")
	}
	return nil
}
