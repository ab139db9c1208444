package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// WriterFactory creates log writers for the configured outputs.
type WriterFactory struct{}

// NewWriterFactory creates a new writer factory
func NewWriterFactory() *WriterFactory {
	return &WriterFactory{}
}

// CreateConsoleWriter creates a stderr writer in the configured format.
func (wf *WriterFactory) CreateConsoleWriter(format LogFormat) io.Writer {
	return wf.formatWriter(os.Stderr, format, false)
}

// CreateFileWriter creates a rotating file writer via lumberjack.
func (wf *WriterFactory) CreateFileWriter(config LoggerConfig) io.Writer {
	if err := os.MkdirAll(filepath.Dir(config.FilePath), 0755); err != nil {
		// Fall back to the console-only setup; the builder already added it.
		return nil
	}

	rotating := &lumberjack.Logger{
		Filename:   config.FilePath,
		MaxSize:    config.MaxSizeMB,
		LocalTime:  true,
		MaxBackups: config.MaxBackups,
	}

	// Color codes in a log file are noise.
	return wf.formatWriter(rotating, config.Format, true)
}

func (wf *WriterFactory) formatWriter(out io.Writer, format LogFormat, noColor bool) io.Writer {
	switch format {
	case FormatConsole:
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: noColor}
	case FormatText:
		return zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	default:
		return out
	}
}
