// Command watermarker applies a top and a middle text watermark to every
// video in a folder and writes "edited_" copies to an output folder, one
// ffmpeg render per file on a pool of workers.
//
// It loads .env, parses flags (or prompts when no folders are given),
// validates configuration, and either runs system diagnostics (--check) or
// the batch.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/backmassage/watermarker/internal/batch"
	"github.com/backmassage/watermarker/internal/check"
	"github.com/backmassage/watermarker/internal/config"
	"github.com/backmassage/watermarker/internal/display"
	"github.com/backmassage/watermarker/internal/logging"
	"github.com/backmassage/watermarker/internal/naming"
	"github.com/backmassage/watermarker/internal/render"
	"github.com/backmassage/watermarker/internal/term"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "watermarker: .env: %v\n", err)
		return 1
	}

	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "watermarker: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		if errors.Is(err, config.ErrEarlyExit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "watermarker: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'watermarker --help' for usage.")
		return 1
	}

	if cfg.Interactive {
		if err := prompt(&cfg, os.Stdin, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "watermarker: %v\n", err)
			return 1
		}
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "watermarker: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "watermarker: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner(os.Stdout, version)

	if cfg.CheckOnly {
		check.RunCheck(&cfg, log)
		return 0
	}

	log.Debug(cfg.Verbose, "watermarker v%s (%s), run %s", version, commit, log.RunID())
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}

	// Fail fast if ffmpeg/ffprobe or drawtext are unusable.
	if err := check.CheckDeps(&cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	// A bad font, color or encoder fails each job on its own.
	if err := check.SmokeRender(&cfg); err != nil {
		log.Warn("%v", err)
	}

	if cfg.CreateOutputDir && !cfg.DryRun {
		dir := naming.SanitizePath(cfg.OutputDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Error("Cannot create output directory %s: %v", dir, err)
			return 1
		}
	}

	// Phase 3: Signal handling. Cancel the context on SIGINT/SIGTERM: running
	// ffmpeg processes are killed and queued files are skipped.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping renders…")
		cancel()
	}()

	// Phase 4: Run the batch. Per-file failures are logged, not fatal.
	renderer := render.New(&cfg, log)
	batch.Run(ctx, &cfg, log, renderer)
	return 0
}

// prompt asks for the batch settings. The prompt is styled with lipgloss,
// so the color mode is applied first.
func prompt(cfg *config.Config, in io.Reader, out io.Writer) error {
	term.Configure(cfg.ColorMode)
	return config.Prompt(cfg, in, out)
}
