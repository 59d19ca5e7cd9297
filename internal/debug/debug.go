package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

// EnvVar names the environment variable that enables debug logging.
const EnvVar = "FLEXUI_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
	checked bool
)

// Init directs debug logging to the file at path, creating parent
// directories as needed. It replaces any previously opened log file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	checked = true
	if path == "" {
		return fmt.Errorf("debug log path is empty")
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
	logger = New(f, slog.LevelDebug)
	return nil
}

// Close closes the debug log file and disables logging.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// current returns the active debug logger, lazily honoring EnvVar.
// Caller must hold mu.
func current() *slog.Logger {
	if !checked {
		checked = true
		if path := os.Getenv(EnvVar); path != "" {
			_ = initLocked(path)
		}
	}
	return logger
}

// Enabled reports whether debug messages are being written.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return current() != nil
}

// Log writes a formatted message to the debug log.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	l := current()
	if l == nil {
		return
	}
	l.Debug(fmt.Sprintf(format, args...))
}

// Logger returns the debug logger, or a logger that discards everything
// when debug logging is off.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if l := current(); l != nil {
		return l
	}
	return NewNop()
}

// New creates a text logger writing to w.
// The conventional "error" attribute key is shortened to "err".
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
