// Package logging provides the leveled console logger used across the
// batch: INFO, SUCCESS, WARN, ERROR and verbose-only DEBUG lines with
// colored badges, errors on stderr, and an optional rotating JSON file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/backmassage/watermarker/internal/config"
	"github.com/backmassage/watermarker/internal/term"
)

const (
	timeFormat   = "2006-01-02 15:04:05"
	levelSuccess = "success"
	fieldRun     = "run"
	fieldSource  = "source"
)

var badgeStyles = map[string]lipgloss.Style{
	"info":       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	levelSuccess: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
	"warn":       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
	"error":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	"debug":      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
}

// Logger is a thin leveled wrapper over zerolog. It is safe for concurrent
// use by the batch workers.
type Logger struct {
	zl     zerolog.Logger
	runID  string
	closer io.Closer
}

// NewLogger configures terminal colors from cfg and builds a Logger writing
// to stdout/stderr, plus a rotating JSON file when cfg.LogFile is set. Call
// Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	color := term.Configure(cfg.ColorMode)
	out := &levelSplitWriter{
		out: consoleWriter(zerolog.SyncWriter(os.Stdout), color),
		err: consoleWriter(zerolog.SyncWriter(os.Stderr), color),
	}

	var sink io.Writer = out
	var closer io.Closer
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    50,
			MaxBackups: 3,
			MaxAge:     28,
		}
		sink = zerolog.MultiLevelWriter(out, lj)
		closer = lj
	}
	return newLogger(sink, closer), nil
}

// NewWithWriter returns a Logger that writes every level to w. Used by
// tests and by callers that capture output.
func NewWithWriter(w io.Writer, color bool) *Logger {
	return newLogger(consoleWriter(zerolog.SyncWriter(w), color), nil)
}

func newLogger(w io.Writer, closer io.Closer) *Logger {
	runID := uuid.NewString()
	zl := zerolog.New(w).Level(zerolog.DebugLevel).With().
		Timestamp().
		Str(fieldRun, runID).
		Logger()
	return &Logger{zl: zl, runID: runID, closer: closer}
}

func consoleWriter(w io.Writer, color bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:           w,
		NoColor:       !color,
		TimeFormat:    timeFormat,
		FieldsExclude: []string{fieldRun, fieldSource},
		FormatLevel: func(i interface{}) string {
			return badge(fmt.Sprint(i), color)
		},
	}
}

// badge renders "[LEVEL]", styled when color is on.
func badge(level string, color bool) string {
	text := "[" + upper(level) + "]"
	if !color {
		return text
	}
	if s, ok := badgeStyles[level]; ok {
		return s.Render(text)
	}
	return text
}

func upper(level string) string {
	switch level {
	case "info":
		return "INFO"
	case levelSuccess:
		return "SUCCESS"
	case "warn":
		return "WARN"
	case "error":
		return "ERROR"
	case "debug":
		return "DEBUG"
	default:
		return "????"
	}
}

// RunID identifies this batch in file records.
func (l *Logger) RunID() string { return l.runID }

// WithSource returns a child logger whose file records carry the source
// path. Console lines are unchanged.
func (l *Logger) WithSource(path string) *Logger {
	return &Logger{zl: l.zl.With().Str(fieldSource, path).Logger(), runID: l.runID}
}

// Close flushes and closes the file sink, if any.
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.zl.Info().Msgf(format, args...)
}

// Success logs at SUCCESS level (green). zerolog has no such level, so the
// event is level-less with an explicit level field.
func (l *Logger) Success(format string, args ...interface{}) {
	l.zl.Log().Str(zerolog.LevelFieldName, levelSuccess).Msgf(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.zl.Warn().Msgf(format, args...)
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.zl.Error().Msgf(format, args...)
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.zl.Debug().Msgf(format, args...)
}

// levelSplitWriter sends error-and-above records to err and the rest to out.
type levelSplitWriter struct {
	out io.Writer
	err io.Writer
}

func (w *levelSplitWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *levelSplitWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	switch level {
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		return w.err.Write(p)
	default:
		return w.out.Write(p)
	}
}
