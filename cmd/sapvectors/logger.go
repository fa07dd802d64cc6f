// logger.go - Structured logging for the vector generator
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a zerolog logger that owns its optional log file
type Logger struct {
	zerolog.Logger
	file *os.File
}

// NewLogger creates a console logger at the given level, also writing JSON
// lines to logFile when it is set. Unknown levels fall back to info.
func NewLogger(level string, logFile string) (*Logger, error) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}
	logger := &Logger{}

	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		logger.file = file
		out = zerolog.MultiLevelWriter(out, file)
	}

	logger.Logger = zerolog.New(out).Level(logLevel).With().Timestamp().Logger()
	return logger, nil
}

// Close closes the logger and its file
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}
