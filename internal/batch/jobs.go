package batch

import (
	"path/filepath"

	"github.com/backmassage/watermarker/internal/config"
	"github.com/backmassage/watermarker/internal/naming"
	"github.com/backmassage/watermarker/internal/render"
)

// BuildJobs creates one Job per filename found in inputDir, in order. The
// output is the filename with the "edited_" prefix in cfg.OutputDir.
func BuildJobs(cfg *config.Config, inputDir string, names []string) []render.Job {
	jobs := make([]render.Job, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, render.Job{
			Source:     filepath.Join(inputDir, name),
			Output:     naming.OutputPath(cfg.OutputDir, name),
			TopText:    cfg.TopText,
			MiddleText: cfg.MiddleText,
			Color:      cfg.TextColor,
			Size:       cfg.TextSize,
		})
	}
	return jobs
}
