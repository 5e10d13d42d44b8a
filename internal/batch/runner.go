package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/backmassage/watermarker/internal/config"
	"github.com/backmassage/watermarker/internal/display"
	"github.com/backmassage/watermarker/internal/logging"
	"github.com/backmassage/watermarker/internal/naming"
	"github.com/backmassage/watermarker/internal/render"
)

// Renderer processes a single Job. Render writes the output; Plan only
// inspects the source and is used for dry runs.
type Renderer interface {
	Render(ctx context.Context, job render.Job) error
	Plan(ctx context.Context, job render.Job) (*render.Plan, error)
}

// Run is the top-level batch entry point. It discovers videos in
// cfg.InputDir, renders each with r on cfg.Workers workers, and returns
// aggregate stats once every job has finished. Canceling ctx kills running
// renders and skips queued jobs; Run still waits for the workers.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, r Renderer) RunStats {
	inputDir := naming.SanitizePath(cfg.InputDir)
	names, err := Discover(inputDir)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return RunStats{}
	}
	if len(names) == 0 {
		log.Warn("No videos (%v) found in %s", videoExtensions, inputDir)
		return RunStats{}
	}

	jobs := BuildJobs(cfg, inputDir, names)
	workers := min(max(cfg.Workers, 1), len(jobs))
	logBatchHeader(cfg, log, len(jobs), workers)
	warnMissingOutputDir(cfg, log)

	b := &runner{
		cfg:   cfg,
		log:   log,
		r:     r,
		total: len(jobs),
	}
	b.stats.s.Total = len(jobs)

	// Everything is queued before the pool starts. Outputs are claimed in
	// listing order so the first input always owns a contested path.
	claims := naming.NewOutputClaims()
	queue := make(chan queuedJob, len(jobs))
	for i, job := range jobs {
		owner, _ := claims.Claim(job.Source, job.Output)
		queue <- queuedJob{n: i + 1, job: job, conflict: owner}
	}
	close(queue)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for q := range queue {
				b.runJob(ctx, q)
			}
			return nil
		})
	}
	_ = g.Wait()

	stats := b.stats.snapshot()
	logSummary(cfg, log, stats)
	return stats
}

type queuedJob struct {
	n        int
	job      render.Job
	conflict string // input that already owns job.Output, if any
}

type runner struct {
	cfg   *config.Config
	log   *logging.Logger
	r     Renderer
	total int
	stats tally
}

// runJob handles one job start to finish. Nothing escapes it: errors,
// timeouts and panics all end up as a log line and a counter.
func (b *runner) runJob(ctx context.Context, q queuedJob) {
	job := q.job
	name := filepath.Base(job.Source)
	log := b.log.WithSource(job.Source)
	prefix := fmt.Sprintf("[%d/%d]", q.n, b.total)

	defer func() {
		if p := recover(); p != nil {
			log.Error("%s %s: panic: %v", prefix, name, p)
			b.stats.fail()
		}
	}()

	if ctx.Err() != nil {
		log.Warn("%s Skip (interrupted): %s", prefix, name)
		b.stats.skip()
		return
	}

	out := naming.SanitizePath(job.Output)
	if q.conflict != "" {
		log.Error("%s Failed: %s writes the same output as %s: %s", prefix, name, filepath.Base(q.conflict), filepath.Base(out))
		b.stats.fail()
		return
	}

	if b.cfg.SkipExisting {
		if _, err := os.Stat(out); err == nil {
			log.Warn("%s Skip (exists): %s", prefix, filepath.Base(out))
			b.stats.skip()
			return
		}
	}

	jobCtx, cancel := b.jobContext(ctx)
	defer cancel()

	if b.cfg.DryRun {
		b.dryRun(jobCtx, log, prefix, job)
		return
	}

	log.Info("%s Processing: %s", prefix, name)
	start := time.Now()
	err := b.r.Render(jobCtx, job)
	elapsed := time.Since(start).Round(time.Millisecond)

	switch {
	case err == nil:
	case ctx.Err() != nil:
		log.Warn("%s Interrupted: %s", prefix, name)
		b.stats.fail()
		return
	case jobCtx.Err() == context.DeadlineExceeded:
		log.Error("%s Timed out after %s: %s", prefix, b.cfg.JobTimeout, name)
		b.stats.fail()
		return
	default:
		log.Error("%s Failed: %s: %v", prefix, name, err)
		b.stats.fail()
		return
	}

	inSize, outSize := fileSize(job.Source), fileSize(out)
	b.stats.succeed(inSize, outSize)
	log.Success("%s Done: %s -> %s in %s (%s)", prefix, name, filepath.Base(out), elapsed, display.FormatBytes(outSize))
}

// dryRun opens the source and logs what would be rendered.
func (b *runner) dryRun(ctx context.Context, log *logging.Logger, prefix string, job render.Job) {
	name := filepath.Base(job.Source)
	plan, err := b.r.Plan(ctx, job)
	if err != nil {
		log.Error("%s Failed: %s: %v", prefix, name, err)
		b.stats.fail()
		return
	}
	log.Success("%s [DRY] %s -> %s (%s %s, %s fps, %.1fs, %s)", prefix, name, filepath.Base(plan.Output),
		plan.VideoCodec, plan.Resolution, plan.FrameRate, plan.Duration, display.FormatBytes(plan.Size))
	if plan.BitRate > 0 {
		log.Debug(b.cfg.Verbose, "%s   bit rate %s, audio=%v %s", prefix, display.FormatBitRate(plan.BitRate), plan.HasAudio, plan.AudioCodec)
	}
	b.stats.succeed(plan.Size, 0)
}

func (b *runner) jobContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if b.cfg.JobTimeout > 0 {
		return context.WithTimeout(ctx, b.cfg.JobTimeout)
	}
	return context.WithCancel(ctx)
}

// warnMissingOutputDir flags up front that every job is going to fail.
func warnMissingOutputDir(cfg *config.Config, log *logging.Logger) {
	if cfg.DryRun {
		return
	}
	dir := naming.SanitizePath(cfg.OutputDir)
	fi, err := os.Stat(dir)
	switch {
	case err != nil:
		log.Warn("Output folder %s does not exist; renders will fail (use --create-output)", dir)
	case !fi.IsDir():
		log.Warn("Output path %s is not a folder; renders will fail", dir)
	}
}

func fileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}
