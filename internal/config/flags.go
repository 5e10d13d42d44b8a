package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into watermark, encoding, batch, display and utility.
// A --config file is merged after Parse so that explicit flags win over it.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrEarlyExit is returned by ParseFlags after --help or --version has been
// printed. The caller should exit successfully without doing any work.
var ErrEarlyExit = errors.New("early exit")

// ParseFlags parses args (without the program name) into cfg. Precedence is
// flags > --config file > whatever cfg already holds (defaults, env).
// With no positional args and no paths from the config file, cfg.Interactive
// is set so the caller can prompt for the batch settings.
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("watermarker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var u utilityFlags
	defineWatermarkFlags(fs, cfg)
	defineEncodingFlags(fs, cfg)
	defineBatchFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &u)
	defineUtilityFlags(fs, cfg, &u)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if u.showHelp {
		printUsage(os.Stderr, version)
		return ErrEarlyExit
	}
	if u.showVersion {
		fmt.Fprintln(os.Stdout, "watermarker v"+version)
		return ErrEarlyExit
	}
	if u.noColor {
		cfg.ColorMode = ColorNever
	}

	if cfg.ConfigFile != "" {
		fc, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return err
		}
		if err := ApplyFile(cfg, fc, explicitFlags(fs)); err != nil {
			return err
		}
	}

	return parsePositionalArgs(fs, cfg)
}

// utilityFlags holds booleans that are applied after Parse rather than bound
// directly to Config fields.
type utilityFlags struct {
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineWatermarkFlags registers --top, --middle, --color, --size, --font, --fontfile.
func defineWatermarkFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.TopText, "top", cfg.TopText, "Top watermark text")
	fs.StringVar(&cfg.MiddleText, "middle", cfg.MiddleText, "Middle watermark text")
	fs.StringVar(&cfg.TextColor, "color", cfg.TextColor, "Text color")
	fs.IntVar(&cfg.TextSize, "size", cfg.TextSize, "Text size in pixels")
	fs.StringVar(&cfg.FontFamily, "font", cfg.FontFamily, "Font family (rendered bold)")
	fs.StringVar(&cfg.FontFile, "fontfile", cfg.FontFile, "Font file (overrides --font)")
}

// defineEncodingFlags registers --codec, --preset, --ffmpeg, --ffprobe.
func defineEncodingFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.VideoCodec, "codec", cfg.VideoCodec, "Video encoder")
	fs.StringVar(&cfg.Preset, "preset", cfg.Preset, "Encoder preset")
	fs.StringVar(&cfg.FFmpegPath, "ffmpeg", cfg.FFmpegPath, "ffmpeg binary")
	fs.StringVar(&cfg.FFprobePath, "ffprobe", cfg.FFprobePath, "ffprobe binary")
}

// defineBatchFlags registers workers, job timeout, skip/create/dry-run and --config.
func defineBatchFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Parallel jobs")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "Same as --workers")
	fs.DurationVar(&cfg.JobTimeout, "job-timeout", cfg.JobTimeout, "Per-file time limit (0 = none)")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", cfg.SkipExisting, "Skip files whose output exists")
	fs.BoolVar(&cfg.CreateOutputDir, "create-output", cfg.CreateOutputDir, "Create the output directory if missing")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "List jobs; do not render")
	fs.BoolVar(&cfg.DryRun, "d", cfg.DryRun, "Same as --dry-run")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
}

// defineDisplayFlags registers --color-mode, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, u *utilityFlags) {
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color-mode", "Log colors: auto | always | never")
	fs.BoolVar(&u.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", cfg.CheckOnly, "Run system diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", cfg.CheckOnly, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Also write JSON logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, _ *Config, u *utilityFlags) {
	fs.BoolVar(&u.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&u.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&u.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&u.showHelp, "h", false, "Same as --help")
}

// explicitFlags returns the canonical names of flags set on the command
// line. Short aliases are folded into their long names.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	aliases := map[string]string{"w": "workers", "l": "log", "d": "dry-run", "v": "verbose", "c": "check"}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := aliases[name]; ok {
			name = long
		}
		set[name] = true
	})
	return set
}

// parsePositionalArgs sets InputDir and OutputDir from the two positional
// args. Zero args fall back to config-file paths, or to the prompt when
// there are none.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	switch len(args) {
	case 0:
		if cfg.InputDir == "" && cfg.OutputDir == "" {
			cfg.Interactive = true
		}
		return nil
	case 2:
		cfg.InputDir = args[0]
		cfg.OutputDir = args[1]
		return nil
	default:
		return fmt.Errorf("need exactly input_dir and output_dir (got %d args)", len(args))
	}
}

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "watermarker v" + version + " - batch text watermarking for video folders"},
		{"", ""},
		{"  watermarker [OPTIONS] <input_dir> <output_dir>", ""},
		{"  watermarker                      (prompts for every setting)", ""},
		{"", ""},
		{"Watermark", ""},
		{"  --top <text>", "Top banner text"},
		{"  --middle <text>", "Centered overlay text"},
		{"  --color <name>", fmt.Sprintf("Text color (default: %s)", DefaultTextColor)},
		{"  --size <n>", fmt.Sprintf("Text size in pixels (default: %d)", DefaultTextSize)},
		{"  --font <family>", fmt.Sprintf("Font family, rendered bold (default: %s)", DefaultFontFamily)},
		{"  --fontfile <path>", "Font file (overrides --font)"},
		{"", ""},
		{"Encoding", ""},
		{"  --codec <name>", fmt.Sprintf("Video encoder (default: %s)", DefaultVideoCodec)},
		{"  --preset <name>", fmt.Sprintf("Encoder preset (default: %s)", DefaultPreset)},
		{"  --ffmpeg <path>", "ffmpeg binary (env: " + EnvFFmpeg + ")"},
		{"  --ffprobe <path>", "ffprobe binary (env: " + EnvFFprobe + ")"},
		{"", ""},
		{"Batch", ""},
		{"  -w, --workers <n>", "Parallel jobs (default: CPU count)"},
		{"  --job-timeout <dur>", "Per-file limit, e.g. 30m; 0 = none (default: 1h)"},
		{"  --skip-existing", "Skip files whose output already exists"},
		{"  --create-output", "Create the output directory if missing"},
		{"  -d, --dry-run", "List jobs; do not render"},
		{"  --config <file>", "YAML config file (flags take precedence)"},
		{"", ""},
		{"Display", ""},
		{"  --color-mode <mode>", "auto | always | never (default: auto)"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output (ffmpeg progress)"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Also write JSON logs to file (rotated)"},
		{"  -c, --check", "System diagnostics (ffmpeg, ffprobe, drawtext)"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so ColorMode can be used with flag.Var.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
