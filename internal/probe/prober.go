package probe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrNoVideo is returned by Probe when the file has no decodable video
// stream (audio-only files, images, text renamed to .mp4).
var ErrNoVideo = errors.New("no video stream")

// Probe runs a single ffprobe JSON call against path using the ffprobe
// binary at ffprobePath and returns the parsed result.
func Probe(ctx context.Context, ffprobePath, path string) (*ProbeResult, error) {
	cmd := exec.CommandContext(ctx, ffprobePath,
		"-v", "error",
		"-print_format", "json",
		"-show_format", "-show_streams",
		path,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("ffprobe %q: %w: %s", path, err, lastLine(msg))
		}
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}

	pr, err := ParseJSON(out)
	if err != nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, err)
	}
	if pr.PrimaryVideo == nil {
		return nil, fmt.Errorf("ffprobe %q: %w", path, ErrNoVideo)
	}
	return pr, nil
}

// ParseJSON converts raw ffprobe JSON output into a ProbeResult.
// Exported for testing without a real ffprobe binary.
func ParseJSON(data []byte) (*ProbeResult, error) {
	var raw ffprobeOutput
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse ffprobe JSON: %w", err)
	}
	return buildResult(&raw), nil
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}

// --- ffprobe JSON wire types ---

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
	Size     string `json:"size"`
	BitRate  string `json:"bit_rate"`
}

type ffprobeStream struct {
	CodecName    string         `json:"codec_name"`
	CodecType    string         `json:"codec_type"`
	Width        int            `json:"width"`
	Height       int            `json:"height"`
	AvgFrameRate string         `json:"avg_frame_rate"`
	RFrameRate   string         `json:"r_frame_rate"`
	Disposition  map[string]int `json:"disposition"`
}

func buildResult(raw *ffprobeOutput) *ProbeResult {
	pr := &ProbeResult{
		Format: FormatInfo{
			Duration: parseFloat(raw.Format.Duration),
			Size:     parseInt64(raw.Format.Size),
			BitRate:  parseInt64(raw.Format.BitRate),
		},
	}

	for i := range raw.Streams {
		s := &raw.Streams[i]
		switch s.CodecType {
		case "video":
			vs := VideoStream{
				Codec:         s.CodecName,
				Width:         s.Width,
				Height:        s.Height,
				AvgFrameRate:  s.AvgFrameRate,
				RFrameRate:    s.RFrameRate,
				IsAttachedPic: s.Disposition["attached_pic"] == 1,
			}
			if !vs.IsAttachedPic && pr.PrimaryVideo == nil {
				pr.PrimaryVideo = &vs
			}
		case "audio":
			pr.AudioStreams = append(pr.AudioStreams, AudioStream{Codec: s.CodecName})
		}
	}
	return pr
}

// ffprobe returns numbers as strings.

func parseInt64(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}
