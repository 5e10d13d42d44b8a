package batch

import (
	"sync"

	"github.com/backmassage/watermarker/internal/config"
	"github.com/backmassage/watermarker/internal/display"
	"github.com/backmassage/watermarker/internal/logging"
	"github.com/backmassage/watermarker/internal/naming"
)

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total            int
	Succeeded        int
	Skipped          int
	Failed           int
	TotalInputBytes  int64
	TotalOutputBytes int64
}

// SizeDelta returns output bytes minus input bytes for the succeeded jobs.
func (s RunStats) SizeDelta() int64 {
	return s.TotalOutputBytes - s.TotalInputBytes
}

// tally is the goroutine-safe accumulator behind RunStats.
type tally struct {
	mu sync.Mutex
	s  RunStats
}

func (t *tally) succeed(in, out int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s.Succeeded++
	t.s.TotalInputBytes += in
	t.s.TotalOutputBytes += out
}

func (t *tally) skip() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s.Skipped++
}

func (t *tally) fail() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.s.Failed++
}

func (t *tally) snapshot() RunStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.s
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, total, workers int) {
	log.Info("Found %d videos in %s", total, naming.SanitizePath(cfg.InputDir))
	log.Info("Output: %s (prefix %q)", naming.SanitizePath(cfg.OutputDir), naming.OutputPrefix)
	log.Info("Watermark: top=%q middle=%q color=%s size=%d", cfg.TopText, cfg.MiddleText, cfg.TextColor, cfg.TextSize)
	log.Info("Encoder: %s (preset %s), workers: %d", cfg.VideoCodec, cfg.Preset, workers)
	if cfg.JobTimeout > 0 {
		log.Info("Per-file time limit: %s", cfg.JobTimeout)
	}
	if cfg.SkipExisting {
		log.Info("Existing outputs: skip")
	}
	if cfg.DryRun {
		log.Info("Dry run: nothing will be rendered")
	}
	log.Debug(cfg.Verbose, "Run ID: %s", log.RunID())
}

func logSummary(cfg *config.Config, log *logging.Logger, s RunStats) {
	log.Info("==============================")
	log.Info("Done: %d succeeded, %d skipped, %d failed (of %d)", s.Succeeded, s.Skipped, s.Failed, s.Total)

	if cfg.DryRun {
		log.Info("Written: n/a (dry run)")
		return
	}
	if s.Succeeded == 0 {
		return
	}
	log.Info("Written: %s (input %s, %s)",
		display.FormatBytes(s.TotalOutputBytes),
		display.FormatBytes(s.TotalInputBytes),
		display.FormatBytesWithSign(s.SizeDelta()))
}
