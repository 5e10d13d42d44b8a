package term

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/watermarker/internal/config"
)

func TestResolve(t *testing.T) {
	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}
	tests := []struct {
		name string
		mode config.ColorMode
		tty  bool
		env  map[string]string
		want bool
	}{
		{"always without tty", config.ColorAlways, false, nil, true},
		{"never with tty", config.ColorNever, true, nil, false},
		{"auto tty", config.ColorAuto, true, map[string]string{"TERM": "xterm-256color"}, true},
		{"auto no tty", config.ColorAuto, false, nil, false},
		{"auto NO_COLOR", config.ColorAuto, true, map[string]string{"NO_COLOR": "1"}, false},
		{"auto dumb term", config.ColorAuto, true, map[string]string{"TERM": "DUMB"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolve(tt.mode, tt.tty, env(tt.env)); got != tt.want {
				t.Errorf("resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfigure(t *testing.T) {
	if !Configure(config.ColorAlways) || lipgloss.ColorProfile() != termenv.ANSI256 {
		t.Error("ColorAlways should enable colors")
	}
	if Configure(config.ColorNever) || lipgloss.ColorProfile() != termenv.Ascii {
		t.Error("ColorNever should disable colors")
	}
}

func TestIsTerminal_RegularFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file is not a terminal")
	}
	f, err := os.Create(filepath.Join(t.TempDir(), "plain"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
