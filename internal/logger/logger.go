// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package logger holds the process-wide structured logger.
//
// Until Init enables it, everything logged through L is discarded, so the
// interactive UI never writes stray output to the terminal.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards all output until Init is called with
// logging enabled.
var L = discard()

var logFile *os.File

const (
	logPrefix     = "schemascope-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 14
)

// Options configure Init.
type Options struct {
	Enabled bool       // if false, all logging is discarded
	LogDir  string     // default: $HOME/.schemascope/logs
	Level   slog.Level // minimum level recorded
}

// Init configures L according to opts. When enabled, log records are written
// as JSON to a file named for the current date in opts.LogDir, and files
// older than the retention period are removed.
func Init(opts Options) error {
	Close()
	if !opts.Enabled {
		L = discard()
		return nil
	}

	dir := opts.LogDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("locate log directory: %w", err)
		}
		dir = filepath.Join(home, ".schemascope", "logs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	pruneLogs(dir, time.Now())

	name := filepath.Join(dir, logPrefix+time.Now().Format(dateLayout)+logSuffix)
	f, err := os.OpenFile(name, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	return nil
}

// Close closes the current log file, if any, and resets L to discard.
func Close() error {
	L = discard()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// ParseLevel parses a level name such as "debug" or "warn". The empty string
// is LevelInfo.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// pruneLogs removes log files in dir dated more than retentionDays before now.
// Errors are ignored.
func pruneLogs(dir string, now time.Time) {
	cutoff := now.AddDate(0, 0, -retentionDays)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, e := range entries {
		stem, ok := strings.CutPrefix(e.Name(), logPrefix)
		if !ok {
			continue
		}
		stem, ok = strings.CutSuffix(stem, logSuffix)
		if !ok {
			continue
		}
		date, err := time.Parse(dateLayout, stem)
		if err != nil || !date.Before(cutoff) {
			continue
		}
		os.Remove(filepath.Join(dir, e.Name()))
	}
}

// Debug logs at debug level on L.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs at info level on L.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs at warning level on L.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs at error level on L.
func Error(msg string, args ...any) { L.Error(msg, args...) }
