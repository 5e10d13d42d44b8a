package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/backmassage/watermarker/internal/config"
)

const answers = "/in\ntop\nmiddle\nwhite\n24\n/out\n"

func TestPrompt_HonorsColorMode(t *testing.T) {
	tests := []struct {
		mode     config.ColorMode
		wantANSI bool
	}{
		{config.ColorAlways, true},
		{config.ColorNever, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.ColorMode = tt.mode
			var out bytes.Buffer

			if err := prompt(&cfg, strings.NewReader(answers), &out); err != nil {
				t.Fatal(err)
			}
			if got := strings.Contains(out.String(), "\x1b["); got != tt.wantANSI {
				t.Errorf("escape codes = %v, want %v:\n%q", got, tt.wantANSI, out.String())
			}
			if cfg.InputDir != "/in" || cfg.OutputDir != "/out" {
				t.Errorf("cfg = %+v", cfg)
			}
		})
	}
}
