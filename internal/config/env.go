package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Environment variables read by ApplyEnv. main loads a .env file (if any)
// into the process environment before calling it.
const (
	EnvFFmpeg  = "WATERMARKER_FFMPEG"
	EnvFFprobe = "WATERMARKER_FFPROBE"
	EnvWorkers = "WATERMARKER_WORKERS"
	EnvLogFile = "WATERMARKER_LOG"
)

// ApplyEnv overlays environment settings onto cfg. getenv is usually
// os.Getenv. Empty variables are ignored; a malformed worker count is an
// error.
func ApplyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvFFmpeg)); v != "" {
		cfg.FFmpegPath = v
	}
	if v := strings.TrimSpace(getenv(EnvFFprobe)); v != "" {
		cfg.FFprobePath = v
	}
	if v := strings.TrimSpace(getenv(EnvWorkers)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s must be a whole number (got %q)", EnvWorkers, v)
		}
		cfg.Workers = n
	}
	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		cfg.LogFile = v
	}
	return nil
}
