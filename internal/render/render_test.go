package render

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/backmassage/watermarker/internal/config"
)

type nopLogger struct{}

func (nopLogger) Debug(bool, string, ...interface{}) {}

func requireFFmpeg(t *testing.T) {
	t.Helper()
	for _, bin := range []string{"ffmpeg", "ffprobe"} {
		if _, err := exec.LookPath(bin); err != nil {
			t.Skipf("%s not on PATH", bin)
		}
	}
}

// makeClip writes a short test-pattern video with audio to path.
func makeClip(t *testing.T, path string) {
	t.Helper()
	cmd := exec.Command("ffmpeg", "-hide_banner", "-loglevel", "error", "-y",
		"-f", "lavfi", "-i", "testsrc=size=320x240:rate=25:duration=1",
		"-f", "lavfi", "-i", "sine=frequency=440:duration=1",
		"-c:v", "libx264", "-preset", "ultrafast", "-c:a", "aac", "-shortest", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Skipf("cannot create test clip (ffmpeg build lacks lavfi/libx264?): %v: %s", err, out)
	}
}

func TestRender_MissingSource(t *testing.T) {
	requireFFmpeg(t)
	cfg := config.DefaultConfig()
	r := New(&cfg, nopLogger{})

	dir := t.TempDir()
	job := testJob()
	job.Source = filepath.Join(dir, "missing.mp4")
	job.Output = filepath.Join(dir, "edited_missing.mp4")

	if err := r.Render(context.Background(), job); err == nil {
		t.Fatal("expected error for a missing source")
	}
	if _, err := os.Stat(job.Output); !os.IsNotExist(err) {
		t.Error("output should not exist when the source cannot be opened")
	}
}

func TestRender_Integration(t *testing.T) {
	requireFFmpeg(t)
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mp4")
	makeClip(t, src)

	cfg := config.DefaultConfig()
	r := New(&cfg, nopLogger{})

	job := testJob()
	job.Source = src
	job.Output = `"` + filepath.Join(dir, "edited_clip.mp4") + `" `

	plan, err := r.Plan(context.Background(), job)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Resolution != "320x240" || plan.FrameRate != "25/1" || !plan.HasAudio {
		t.Errorf("plan = %+v", plan)
	}
	if plan.VideoCodec == "" || plan.AudioCodec == "" {
		t.Errorf("codecs not carried into the plan: %+v", plan)
	}

	if err := r.Render(context.Background(), job); err != nil {
		var re *RenderError
		if errors.As(err, &re) && re.Hint != "" {
			t.Skipf("ffmpeg cannot render here: %v", err)
		}
		t.Fatalf("Render: %v", err)
	}
	fi, err := os.Stat(filepath.Join(dir, "edited_clip.mp4"))
	if err != nil {
		t.Fatalf("output not written at the sanitized path: %v", err)
	}
	if fi.Size() == 0 {
		t.Error("output is empty")
	}
}

func TestRender_Canceled(t *testing.T) {
	requireFFmpeg(t)
	cfg := config.DefaultConfig()
	r := New(&cfg, nopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	job := testJob()
	job.Output = filepath.Join(t.TempDir(), "edited_clip.mp4")
	if err := r.Render(ctx, job); err == nil {
		t.Error("expected error with a canceled context")
	}
}
