package config

import (
	"runtime"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.InputDir = "/in"
	cfg.OutputDir = "/out"
	cfg.TopText = "top"
	cfg.MiddleText = "middle"
	return cfg
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("default Workers = %d, want %d", cfg.Workers, runtime.NumCPU())
	}
	if cfg.TextColor != "white" {
		t.Errorf("default TextColor = %q, want white", cfg.TextColor)
	}
	if cfg.TextSize != 24 {
		t.Errorf("default TextSize = %d, want 24", cfg.TextSize)
	}
	if cfg.VideoCodec != "libx264" || cfg.Preset != "ultrafast" {
		t.Errorf("default encoder = %s/%s, want libx264/ultrafast", cfg.VideoCodec, cfg.Preset)
	}
	if cfg.JobTimeout != time.Hour {
		t.Errorf("default JobTimeout = %s, want 1h", cfg.JobTimeout)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want auto", cfg.ColorMode)
	}
	if cfg.CreateOutputDir {
		t.Error("default CreateOutputDir should be false")
	}
	if cfg.SkipExisting || cfg.DryRun {
		t.Error("default SkipExisting/DryRun should be false")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"top only", func(c *Config) { c.MiddleText = "" }, false},
		{"middle only", func(c *Config) { c.TopText = "" }, false},
		{"no text", func(c *Config) { c.TopText, c.MiddleText = "", "" }, true},
		{"zero size", func(c *Config) { c.TextSize = 0 }, true},
		{"negative size", func(c *Config) { c.TextSize = -4 }, true},
		{"zero workers", func(c *Config) { c.Workers = 0 }, true},
		{"negative timeout", func(c *Config) { c.JobTimeout = -time.Second }, true},
		{"zero timeout disables", func(c *Config) { c.JobTimeout = 0 }, false},
		{"empty color", func(c *Config) { c.TextColor = " " }, true},
		{"missing input", func(c *Config) { c.InputDir = "" }, true},
		{"missing output", func(c *Config) { c.OutputDir = "  " }, true},
		{"bad color mode", func(c *Config) { c.ColorMode = "rainbow" }, true},
		{"empty ffmpeg", func(c *Config) { c.FFmpegPath = "" }, true},
		{"empty codec", func(c *Config) { c.VideoCodec = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_CheckOnlySkipsBatchFields(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass with empty paths when CheckOnly is true, got: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvFFmpeg:  "/opt/ffmpeg/bin/ffmpeg",
		EnvFFprobe: " /opt/ffmpeg/bin/ffprobe ",
		EnvWorkers: "3",
		EnvLogFile: "/var/log/wm.log",
	}
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("FFmpegPath = %q", cfg.FFmpegPath)
	}
	if cfg.FFprobePath != "/opt/ffmpeg/bin/ffprobe" {
		t.Errorf("FFprobePath = %q", cfg.FFprobePath)
	}
	if cfg.Workers != 3 {
		t.Errorf("Workers = %d, want 3", cfg.Workers)
	}
	if cfg.LogFile != "/var/log/wm.log" {
		t.Errorf("LogFile = %q", cfg.LogFile)
	}
}

func TestApplyEnv_EmptyKeepsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := ApplyEnv(&cfg, func(string) string { return "" }); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.FFmpegPath != "ffmpeg" || cfg.FFprobePath != "ffprobe" {
		t.Errorf("paths changed: %q %q", cfg.FFmpegPath, cfg.FFprobePath)
	}
}

func TestApplyEnv_BadWorkers(t *testing.T) {
	cfg := DefaultConfig()
	err := ApplyEnv(&cfg, func(k string) string {
		if k == EnvWorkers {
			return "many"
		}
		return ""
	})
	if err == nil {
		t.Error("expected error for non-numeric worker count")
	}
}
