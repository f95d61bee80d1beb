package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var Logger *zerolog.Logger

// Init configures the global console logger.
// level: "debug", "info", "warn" or "error"; anything else falls back to info.
// file: optional log file, appended to alongside stderr.
func Init(level string, file string) error {
	var logLevel zerolog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "info":
		logLevel = zerolog.InfoLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02 15:04:05"}

	if file != "" {
		fileWriter, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return err
		}
		output = zerolog.MultiLevelWriter(output, fileWriter)
	}

	logger := zerolog.New(output).Level(logLevel).With().Timestamp().Logger()
	Logger = &logger
	return nil
}

// Get returns the global logger, or a discarding one before Init.
func Get() *zerolog.Logger {
	if Logger == nil {
		logger := zerolog.New(io.Discard)
		Logger = &logger
	}
	return Logger
}
