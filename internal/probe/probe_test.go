package probe

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// MP4 with a cover-art stream ahead of the real video, plus stereo AAC.
const sampleMP4 = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 900,
      "avg_frame_rate": "0/0",
      "r_frame_rate": "90000/1",
      "disposition": { "default": 0, "attached_pic": 1 }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "width": 1920,
      "height": 1080,
      "avg_frame_rate": "30000/1001",
      "r_frame_rate": "30000/1001",
      "disposition": { "default": 1, "attached_pic": 0 }
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 2,
      "disposition": { "default": 1 }
    }
  ],
  "format": {
    "filename": "/videos/in/clip.mp4",
    "format_name": "mov,mp4,m4a,3gp,3g2,mj2",
    "duration": "12.512000",
    "size": "7340032",
    "bit_rate": "4693000"
  }
}`

// Screen recording without audio whose avg_frame_rate is unknown.
const sampleSilentAVI = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mpeg4",
      "codec_type": "video",
      "width": 1280,
      "height": 720,
      "avg_frame_rate": "0/0",
      "r_frame_rate": "25/1"
    }
  ],
  "format": {
    "filename": "rec.avi",
    "format_name": "avi",
    "duration": "3.0",
    "size": "1024"
  }
}`

func TestParseJSON_MP4(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleMP4))
	if err != nil {
		t.Fatal(err)
	}
	if pr.PrimaryVideo == nil {
		t.Fatal("PrimaryVideo is nil")
	}
	if pr.PrimaryVideo.Codec != "h264" {
		t.Errorf("PrimaryVideo = %+v, want h264 (cover art skipped)", pr.PrimaryVideo)
	}
	if got := pr.Resolution(); got != "1920x1080" {
		t.Errorf("Resolution() = %q", got)
	}
	if got := pr.FrameRate(); got != "30000/1001" {
		t.Errorf("FrameRate() = %q", got)
	}
	if !pr.HasAudio() || pr.AudioCodec() != "aac" {
		t.Errorf("audio = %+v", pr.AudioStreams)
	}
	if got := pr.VideoCodec(); got != "h264" {
		t.Errorf("VideoCodec() = %q", got)
	}
	if pr.Format.Size != 7340032 || pr.Format.BitRate != 4693000 {
		t.Errorf("format = %+v", pr.Format)
	}
	if pr.Format.Duration != 12.512 {
		t.Errorf("Duration = %v", pr.Format.Duration)
	}
}

func TestParseJSON_FallbackFrameRateAndNoAudio(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleSilentAVI))
	if err != nil {
		t.Fatal(err)
	}
	if got := pr.FrameRate(); got != "25/1" {
		t.Errorf("FrameRate() = %q, want r_frame_rate fallback 25/1", got)
	}
	if pr.HasAudio() {
		t.Error("HasAudio() = true for a file without audio")
	}
	if pr.Format.BitRate != 0 {
		t.Errorf("missing bit_rate should parse as 0, got %d", pr.Format.BitRate)
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	if _, err := ParseJSON([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestFrameRate(t *testing.T) {
	tests := []struct {
		avg, r string
		want   string
	}{
		{"24/1", "24/1", "24/1"},
		{"0/0", "0/0", ""},
		{"", "60/1", "60/1"},
		{"29.97", "", "29.97"},
		{"abc", "30/0", ""},
	}
	for _, tt := range tests {
		pr := &ProbeResult{PrimaryVideo: &VideoStream{AvgFrameRate: tt.avg, RFrameRate: tt.r}}
		if got := pr.FrameRate(); got != tt.want {
			t.Errorf("FrameRate(avg=%q, r=%q) = %q, want %q", tt.avg, tt.r, got, tt.want)
		}
	}
	if got := (&ProbeResult{}).FrameRate(); got != "" {
		t.Errorf("FrameRate() without video = %q", got)
	}
}

func TestResolution_Unknown(t *testing.T) {
	if got := (&ProbeResult{}).Resolution(); got != "unknown" {
		t.Errorf("Resolution() = %q", got)
	}
}

func TestProbe_MissingBinary(t *testing.T) {
	_, err := Probe(context.Background(), filepath.Join(t.TempDir(), "no-ffprobe"), "x.mp4")
	if err == nil {
		t.Error("expected error for a missing ffprobe binary")
	}
}

func TestProbe_CorruptFile(t *testing.T) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		t.Skip("ffprobe not on PATH")
	}
	path := filepath.Join(t.TempDir(), "corrupt.mp4")
	if err := os.WriteFile(path, []byte("this is not a video"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Probe(context.Background(), "ffprobe", path)
	if err == nil {
		t.Fatal("expected error probing a corrupt file")
	}
	if errors.Is(err, context.Canceled) {
		t.Errorf("unexpected cancellation: %v", err)
	}
}
