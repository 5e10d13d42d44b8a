package render

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Args   []string
	Stderr string
	Err    error
}

// Execute runs ffmpegPath with the shared preamble followed by args (the
// ffmpeg-go stream arguments). When verbose is set, stderr is tee'd to
// os.Stderr in real time; otherwise it is captured silently for Diagnose.
// The process is killed when ctx is done.
func Execute(ctx context.Context, ffmpegPath string, args []string, verbose bool) ExecResult {
	full := make([]string, 0, len(args)+5)
	full = append(full, "-hide_banner", "-nostdin")
	if verbose {
		full = append(full, "-loglevel", "info")
	} else {
		full = append(full, "-loglevel", "error")
	}
	full = append(full, args...)

	cmd := exec.CommandContext(ctx, ffmpegPath, full...)

	var stderrBuf bytes.Buffer
	if verbose {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	if err != nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	return ExecResult{
		Args:   full,
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
