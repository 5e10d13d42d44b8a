// Package term resolves the color mode against the attached terminal and
// configures the shared lipgloss renderer accordingly.
//
// Logging, the banner and the interactive prompt all render through
// lipgloss, so [Configure] runs before the prompt and again from
// [logging.NewLogger]; every later Render call follows its decision.
package term

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/backmassage/watermarker/internal/config"
)

// Configure resolves mode and sets the lipgloss color profile. It returns
// whether colors are on.
func Configure(mode config.ColorMode) bool {
	on := resolve(mode, IsTerminal(os.Stdout), os.Getenv)
	if on {
		lipgloss.SetColorProfile(termenv.ANSI256)
	} else {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return on
}

// resolve decides whether colors should be on from the configured mode, TTY
// detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode, tty bool, getenv func(string) string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return tty &&
			getenv("NO_COLOR") == "" &&
			strings.ToLower(getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY, including Cygwin/MSYS
// pseudo terminals.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
