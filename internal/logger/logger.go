// Package logger provides verbose logging for the barangay CLI.
// When verbose mode is enabled via the --verbose flag or log.verbose in config,
// debug messages are printed to stderr to help trace store and tool activity.
// SetFile additionally mirrors every message into a size-rotated log file.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for the log file.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 28
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	file    *lumberjack.Logger
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetFile mirrors log output into path, rotating it once it grows past maxSizeMB.
// Non-positive limits fall back to the package defaults. An empty path disables
// the file and closes any previously opened one.
func SetFile(path string, maxSizeMB, maxBackups int) error {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		if err := file.Close(); err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
		file = nil
	}
	if path == "" {
		return nil
	}
	if maxSizeMB <= 0 {
		maxSizeMB = DefaultMaxSizeMB
	}
	if maxBackups <= 0 {
		maxBackups = DefaultMaxBackups
	}
	file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     DefaultMaxAgeDays,
		Compress:   true,
	}
	return nil
}

// Close flushes and closes the log file, if one is set.
func Close() error {
	return SetFile("", 0, 0)
}

// write must be called with mu held for reading.
func write(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	fmt.Fprint(output, line)
	if file != nil {
		_, _ = io.WriteString(file, line)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write("[DEBUG] "+format+"\n", args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write("\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write("[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
// Warnings always reach the log file when one is set.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		write("[WARN] "+format+"\n", args...)
		return
	}
	if file != nil {
		_, _ = fmt.Fprintf(file, "[WARN] "+format+"\n", args...)
	}
}
