// Package debug provides optional structured debug logging.
//
// When the FLOW_DEBUG environment variable is set to a file path, debug
// records are appended to that file as JSON lines. Otherwise logging is a no-op.
package debug

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

const EnvVar = "FLOW_DEBUG"

var (
	mu      sync.Mutex
	logger  *slog.Logger
	logFile *os.File

	enabled atomic.Bool
	envOnce sync.Once
)

// Init starts debug logging to the file at path.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "flow-debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	enabled.Store(true)
	return nil
}

// SetLogger routes debug records to l. A nil logger disables debug logging.
func SetLogger(l *slog.Logger) {
	envOnce.Do(func() {})

	mu.Lock()
	defer mu.Unlock()

	logger = l
	enabled.Store(l != nil)
}

// Enabled reports whether debug records are written anywhere.
// The first call reads FLOW_DEBUG.
func Enabled() bool {
	envOnce.Do(func() {
		path := os.Getenv(EnvVar)
		if path == "" {
			return
		}

		mu.Lock()
		defer mu.Unlock()
		if err := initLocked(path); err != nil {
			fmt.Fprintf(os.Stderr, "flow: %v\n", err)
		}
	})

	return enabled.Load()
}

// Log writes a debug record. Callers should check Enabled first when
// building the arguments is not free.
func Log(msg string, args ...any) {
	if !Enabled() {
		return
	}

	mu.Lock()
	l := logger
	mu.Unlock()

	if l != nil {
		l.Debug(msg, args...)
	}
}

// Close stops debug logging and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	enabled.Store(false)
	logger = nil

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
