// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation once sessions get long enough to matter.

// defaultLogger discards everything until InitLogger runs, so packages can
// log freely from tests.
var defaultLogger = slog.New(slog.DiscardHandler)

// Options controls where and how much the application logs.
type Options struct {
	Level  string // debug, info, warn or error
	Stderr bool   // also write to stderr (disabled while the TUI owns the terminal)
}

// getLogFilePath determines the path for the application log file based on XDG spec.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "contact-book", "app.log"), nil
}

// ParseLevel maps a config value onto a slog level. The empty string means info.
func ParseLevel(option string) (slog.Level, bool) {
	switch strings.ToLower(option) {
	case "", "info":
		return slog.LevelInfo, true
	case "debug":
		return slog.LevelDebug, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// openLogFile creates the state directory and opens the log file for appending.
func openLogFile() (*os.File, string, error) {
	logFilePath, err := getLogFilePath()
	if err != nil {
		return nil, "", err
	}
	// 0750: user rwx, group rx, others ---
	if err := os.MkdirAll(filepath.Dir(logFilePath), 0750); err != nil {
		return nil, logFilePath, fmt.Errorf("creating log directory: %w", err)
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, logFilePath, fmt.Errorf("opening log file: %w", err)
	}
	return file, logFilePath, nil
}

// InitLogger configures the package logger. It should be called once at startup.
func InitLogger(opts Options) {
	level, ok := ParseLevel(opts.Level)

	var writers []io.Writer
	file, path, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "File logging disabled: %v\n", err)
	} else {
		// The file is left open for the process lifetime; the OS closes it on exit.
		writers = append(writers, file)
	}
	if opts.Stderr {
		writers = append(writers, os.Stderr)
	}

	if len(writers) == 0 {
		defaultLogger = slog.New(slog.DiscardHandler)
		return
	}
	handler := slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level})
	defaultLogger = slog.New(handler)

	if !ok {
		Warn("could not parse log level, using info", "level", opts.Level)
	}
	Debug("logging configured", "file", path, "stderr", opts.Stderr)
}

// SetLogger replaces the package logger, mainly for tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...interface{}) {
	defaultLogger.Error(fmt.Sprintf(format, v...))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}
