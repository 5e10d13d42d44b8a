package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Prompt asks for the six batch settings in order: input folder, top text,
// middle text, color, text size and output folder. Folder answers have
// double quotes trimmed at both ends and then surrounding whitespace; text
// and color answers only have double quotes trimmed. The size must be a
// whole number; anything else aborts with an error before any work is done.
func Prompt(cfg *Config, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)

	fmt.Fprintln(out, promptHeaderStyle.Render("Please enter the following details:"))

	folder, err := ask(r, out, "Enter the folder path containing videos: ")
	if err != nil {
		return err
	}
	top, err := ask(r, out, "Enter the top watermark text: ")
	if err != nil {
		return err
	}
	middle, err := ask(r, out, "Enter the middle watermark text: ")
	if err != nil {
		return err
	}
	color, err := ask(r, out, "Enter the text color (e.g., 'white', 'red'): ")
	if err != nil {
		return err
	}
	sizeRaw, err := ask(r, out, "Enter the text size (e.g., 24): ")
	if err != nil {
		return err
	}
	size, err := strconv.Atoi(strings.TrimSpace(sizeRaw))
	if err != nil {
		return fmt.Errorf("text size must be a whole number (got %q)", sizeRaw)
	}
	output, err := ask(r, out, "Enter the output folder path: ")
	if err != nil {
		return err
	}

	cfg.InputDir = strings.TrimSpace(strings.Trim(folder, `"`))
	cfg.TopText = strings.Trim(top, `"`)
	cfg.MiddleText = strings.Trim(middle, `"`)
	cfg.TextColor = strings.Trim(color, `"`)
	cfg.TextSize = size
	cfg.OutputDir = strings.TrimSpace(strings.Trim(output, `"`))
	cfg.Interactive = false
	return nil
}

// ask prints label and reads one line without its line terminator. A final
// line without a newline is accepted; EOF before any input is an error.
func ask(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, promptStyle.Render(label))
	line, err := r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}
		if line == "" {
			return "", fmt.Errorf("read answer for %q: %w", strings.TrimSpace(label), io.ErrUnexpectedEOF)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}
