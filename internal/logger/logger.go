// Package logger configures the application's structured logger: a
// charmbracelet/log logger writing to a rotating file, mirrored to stderr in
// debug mode.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file created inside Config.Dir.
const FileName = "plazo.log"

// Config holds logger configuration.
type Config struct {
	Debug bool
	// Dir is the log directory. Empty disables file logging.
	Dir string
	// Stderr overrides the debug mirror, mainly for tests.
	Stderr io.Writer
}

// Logger wraps the charmbracelet logger together with the rotating file it
// writes to.
type Logger struct {
	*log.Logger
	file *lumberjack.Logger
}

// New builds a logger. Without a directory and outside debug mode every
// record is discarded.
func New(cfg Config) (*Logger, error) {
	var writers []io.Writer
	var file *lumberjack.Logger

	if cfg.Dir != "" {
		if err := os.MkdirAll(cfg.Dir, 0755); err != nil {
			return nil, err
		}
		file = &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Dir, FileName),
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writers = append(writers, file)
	}

	level := log.InfoLevel
	if cfg.Debug {
		level = log.DebugLevel
		stderr := cfg.Stderr
		if stderr == nil {
			stderr = os.Stderr
		}
		writers = append(writers, stderr)
	}

	var w io.Writer = io.Discard
	switch len(writers) {
	case 0:
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    cfg.Debug,
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "plazo",
	})
	return &Logger{Logger: l, file: file}, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return &Logger{Logger: log.New(io.Discard)}
}

// Slog exposes the logger through log/slog for packages that take a
// *slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.Logger)
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
