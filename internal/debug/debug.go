// Package debug provides the file-backed debug logger. Logging goes to
// ~/.departure/debug.log so it never corrupts the terminal UI.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"departure/pkg/config"
)

// DebugLogger manages debug output using Go's standard logging
type DebugLogger struct {
	logger  *log.Logger
	logFile *os.File
}

// NewDebugLogger creates a new debug logger writing to the departure directory
func NewDebugLogger() *DebugLogger {
	if err := config.EnsureDepartureDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to create .departure directory: %v\n", err)
	}

	departureDir, err := config.GetDepartureDir()
	if err != nil {
		departureDir = "."
	}

	debugLogPath := filepath.Join(departureDir, "debug.log")

	logFile, err := os.OpenFile(debugLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Fall back to stderr if file creation fails
		logFile = os.Stderr
	}

	logger := log.New(logFile, "[DEBUG] ", log.LstdFlags|log.Lshortfile)

	debugLogger := &DebugLogger{
		logger:  logger,
		logFile: logFile,
	}

	logger.Println("=== Debug session started ===")

	return debugLogger
}

// Log adds a message using Go's standard logger
func (d *DebugLogger) Log(format string, args ...interface{}) {
	d.logger.Printf(format, args...)
}

// Close closes the debug log file
func (d *DebugLogger) Close() {
	d.logger.Println("=== Debug session ended ===")

	if d.logFile != nil && d.logFile != os.Stderr {
		if err := d.logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Failed to close debug log file: %v\n", err)
		}
	}
}

// Global debug logger instance
var globalDebugLogger *DebugLogger

// DebugLog logs a message to the global debug logger. It is a no-op until
// InitDebugLogger runs, so packages can call it unconditionally.
func DebugLog(format string, args ...interface{}) {
	if globalDebugLogger != nil {
		globalDebugLogger.Log(format, args...)
	}
}

// InitDebugLogger initializes the global debug logger
func InitDebugLogger() *DebugLogger {
	globalDebugLogger = NewDebugLogger()
	return globalDebugLogger
}
