// Package log provides leveled logging to a file plus an opt-in debug log.
// Enable debug mode by setting VIEWTRACK_DEBUG=1.
package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

var (
	InfoLog    *log.Logger
	WarningLog *log.Logger
	ErrorLog   *log.Logger

	logFile *os.File
)

var logFileName = filepath.Join(os.TempDir(), "viewtrack.log")

// Loggers default to discard so library packages can log before (or
// without) Initialize.
func init() {
	initDiscard()
}

// Initialize sets up the leveled loggers. Logs go to a temp file rather
// than stderr so they never corrupt TUI output. Call Close before exit.
func Initialize() {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		// Fall back to discarding; the app must keep working without logs.
		initDiscard()
		return
	}
	logFile = f

	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLog = log.New(f, "INFO: ", flags)
	WarningLog = log.New(f, "WARNING: ", flags)
	ErrorLog = log.New(f, "ERROR: ", flags)

	initDebug(f)
}

func initDiscard() {
	InfoLog = log.New(io.Discard, "", 0)
	WarningLog = log.New(io.Discard, "", 0)
	ErrorLog = log.New(io.Discard, "", 0)
	DebugLog = log.New(io.Discard, "", 0)
}

// Close flushes and closes the log file.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	if debugEnabled {
		fmt.Println("wrote logs to " + logFileName)
	}
}

// Debug mode configuration
var (
	debugEnabled bool
	DebugLog     *log.Logger
)

// initDebug wires the debug logger when VIEWTRACK_DEBUG=1 is set, and to a
// no-op logger otherwise so call sites never nil-check.
func initDebug(w io.Writer) {
	if os.Getenv("VIEWTRACK_DEBUG") != "1" {
		DebugLog = log.New(io.Discard, "", 0)
		return
	}
	debugEnabled = true
	DebugLog = log.New(w, "DEBUG: ", log.Ldate|log.Ltime|log.Lmicroseconds)
	DebugLog.Println("debug mode enabled")
}

// Debug logs a debug message if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if debugEnabled && DebugLog != nil {
		DebugLog.Printf(format, v...)
	}
}
