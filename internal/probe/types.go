package probe

import (
	"strconv"
	"strings"
)

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Duration float64 // Seconds.
	Size     int64
	BitRate  int64
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Codec         string
	Width         int
	Height        int
	AvgFrameRate  string // Rational, e.g. "30000/1001".
	RFrameRate    string
	IsAttachedPic bool
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Codec string
}

// ProbeResult is the parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-attached-pic video stream (nil if none).
type ProbeResult struct {
	Format       FormatInfo
	PrimaryVideo *VideoStream
	AudioStreams []AudioStream
}

// HasAudio reports whether the source has at least one audio stream.
func (p *ProbeResult) HasAudio() bool { return len(p.AudioStreams) > 0 }

// VideoCodec returns the primary video codec name, or "" when unknown.
func (p *ProbeResult) VideoCodec() string {
	if p.PrimaryVideo == nil {
		return ""
	}
	return p.PrimaryVideo.Codec
}

// AudioCodec returns the codec of the first audio stream, the one that is
// copied to the output, or "" without audio.
func (p *ProbeResult) AudioCodec() string {
	if len(p.AudioStreams) == 0 {
		return ""
	}
	return p.AudioStreams[0].Codec
}

// FrameRate returns the primary video frame rate as an ffmpeg rational.
// avg_frame_rate is preferred; r_frame_rate is used when it is missing or
// "0/0". Returns "" when neither is usable.
func (p *ProbeResult) FrameRate() string {
	if p.PrimaryVideo == nil {
		return ""
	}
	for _, r := range []string{p.PrimaryVideo.AvgFrameRate, p.PrimaryVideo.RFrameRate} {
		if validRate(r) {
			return r
		}
	}
	return ""
}

// validRate accepts "N/D" with N, D > 0 or a positive decimal.
func validRate(r string) bool {
	r = strings.TrimSpace(r)
	if r == "" {
		return false
	}
	num, den, isFrac := strings.Cut(r, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil || n <= 0 {
		return false
	}
	if !isFrac {
		return true
	}
	d, err := strconv.ParseFloat(den, 64)
	return err == nil && d > 0
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (p *ProbeResult) Resolution() string {
	if p.PrimaryVideo == nil || p.PrimaryVideo.Width <= 0 || p.PrimaryVideo.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(p.PrimaryVideo.Width) + "x" + strconv.Itoa(p.PrimaryVideo.Height)
}
