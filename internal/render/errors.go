package render

import (
	"fmt"
	"regexp"
	"strings"
)

// stderr patterns mapped to a short hint. Checked in order; first match wins.
var diagnoses = []struct {
	re   *regexp.Regexp
	hint string
}{
	{regexp.MustCompile(`No such filter: 'drawtext'`),
		"ffmpeg was built without drawtext (needs libfreetype)"},
	{regexp.MustCompile(`(?i)Cannot find a valid font|Could not load font|Impossible to open font file|Error opening font`),
		"font not found (check --font or --fontfile)"},
	{regexp.MustCompile(`(?i)Cannot find color|Invalid color|Unable to parse option value .* as a color`),
		"unknown text color"},
	{regexp.MustCompile(`(?i)Unknown encoder|Encoder not found`),
		"video encoder not available in this ffmpeg build"},
	{regexp.MustCompile(`(?i)Error opening output file|Could not open file .*|Error opening output files`),
		"cannot write output (does the output folder exist?)"},
	{regexp.MustCompile(`(?i)Invalid data found when processing input|moov atom not found|could not find codec parameters`),
		"source is corrupt or not a video"},
	{regexp.MustCompile(`(?i)No space left on device`),
		"disk full"},
}

// Diagnose returns a short human hint for ffmpeg stderr, or "" when no
// known pattern matches.
func Diagnose(stderr string) string {
	for _, d := range diagnoses {
		if d.re.MatchString(stderr) {
			return d.hint
		}
	}
	return ""
}

// RenderError is returned by Render when ffmpeg fails. It carries the
// output path, an optional hint and the last lines of stderr.
type RenderError struct {
	Path string
	Hint string
	Tail string
	Err  error
}

func (e *RenderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "render %s: %v", e.Path, e.Err)
	if e.Hint != "" {
		b.WriteString(" (" + e.Hint + ")")
	}
	if e.Tail != "" {
		b.WriteString(": " + e.Tail)
	}
	return b.String()
}

func (e *RenderError) Unwrap() error { return e.Err }

// tail returns the last n non-empty lines of s joined with " | ".
func tail(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	kept := make([]string, 0, n)
	for i := len(lines) - 1; i >= 0 && len(kept) < n; i-- {
		if l := strings.TrimSpace(lines[i]); l != "" {
			kept = append(kept, l)
		}
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return strings.Join(kept, " | ")
}
