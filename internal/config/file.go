package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the YAML layout accepted by --config. Every field is
// optional; pointers distinguish "unset" from an explicit zero/false.
type FileConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`

	Watermark struct {
		Top      *string `yaml:"top"`
		Middle   *string `yaml:"middle"`
		Color    string  `yaml:"color"`
		Size     int     `yaml:"size"`
		Font     string  `yaml:"font"`
		FontFile string  `yaml:"fontfile"`
	} `yaml:"watermark"`

	Encode struct {
		Codec   string `yaml:"codec"`
		Preset  string `yaml:"preset"`
		FFmpeg  string `yaml:"ffmpeg"`
		FFprobe string `yaml:"ffprobe"`
	} `yaml:"encode"`

	Batch struct {
		Workers      int    `yaml:"workers"`
		JobTimeout   string `yaml:"job_timeout"`
		SkipExisting *bool  `yaml:"skip_existing"`
		CreateOutput *bool  `yaml:"create_output"`
	} `yaml:"batch"`

	Log string `yaml:"log"`
}

// LoadFile reads and decodes a YAML config file. Unknown keys are an error.
func LoadFile(path string) (FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileConfig{}, fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	var fc FileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return FileConfig{}, fmt.Errorf("parse config %q: %w", path, err)
	}
	return fc, nil
}

// ApplyFile copies set file values into cfg, except for settings whose
// flag name appears in explicit (flags given on the command line win).
func ApplyFile(cfg *Config, fc FileConfig, explicit map[string]bool) error {
	set := func(flagName string) bool { return !explicit[flagName] }

	if fc.InputDir != "" {
		cfg.InputDir = fc.InputDir
	}
	if fc.OutputDir != "" {
		cfg.OutputDir = fc.OutputDir
	}

	w := fc.Watermark
	if w.Top != nil && set("top") {
		cfg.TopText = *w.Top
	}
	if w.Middle != nil && set("middle") {
		cfg.MiddleText = *w.Middle
	}
	if w.Color != "" && set("color") {
		cfg.TextColor = w.Color
	}
	if w.Size != 0 && set("size") {
		cfg.TextSize = w.Size
	}
	if w.Font != "" && set("font") {
		cfg.FontFamily = w.Font
	}
	if w.FontFile != "" && set("fontfile") {
		cfg.FontFile = w.FontFile
	}

	e := fc.Encode
	if e.Codec != "" && set("codec") {
		cfg.VideoCodec = e.Codec
	}
	if e.Preset != "" && set("preset") {
		cfg.Preset = e.Preset
	}
	if e.FFmpeg != "" && set("ffmpeg") {
		cfg.FFmpegPath = e.FFmpeg
	}
	if e.FFprobe != "" && set("ffprobe") {
		cfg.FFprobePath = e.FFprobe
	}

	b := fc.Batch
	if b.Workers != 0 && set("workers") {
		cfg.Workers = b.Workers
	}
	if b.JobTimeout != "" && set("job-timeout") {
		d, err := time.ParseDuration(b.JobTimeout)
		if err != nil {
			return fmt.Errorf("batch.job_timeout: %w", err)
		}
		cfg.JobTimeout = d
	}
	if b.SkipExisting != nil && set("skip-existing") {
		cfg.SkipExisting = *b.SkipExisting
	}
	if b.CreateOutput != nil && set("create-output") {
		cfg.CreateOutputDir = *b.CreateOutput
	}

	if fc.Log != "" && set("log") {
		cfg.LogFile = fc.Log
	}
	return nil
}
