package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "pageview.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
)

// Error appends err to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	write(func(f *os.File) {
		log.New(f, "", log.LstdFlags).Println(err)
	})
}

// Warn records a recoverable failure that the caller chose to ignore, such as
// a best-effort terminal restore.
func Warn(context string, err error) {
	if err == nil {
		return
	}
	write(func(f *os.File) {
		log.New(f, "", log.LstdFlags).Printf("warning: %s: %v", context, err)
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// TraceEnabled reports whether Trace currently writes entries.
func TraceEnabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	write(func(f *os.File) {
		if err := json.NewEncoder(f).Encode(entry); err != nil {
			fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
		}
	})
}

func write(fn func(*os.File)) {
	mu.Lock()
	path := logPath
	mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", err)
		return
	}
	defer f.Close()
	fn(f)
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}

// Path returns the active log destination.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}
