package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"resource-catalog/pkg/logging"

	"go.uber.org/zap"
)

var (
	mu     sync.RWMutex
	logger = zap.NewNop()
)

// Init points the CLI logger at a rotated file under dir.
// The TUI owns stdout, so nothing is ever written to the terminal.
func Init(dir string, level string) (*zap.Logger, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	l := logging.NewFile(filepath.Join(dir, "cli.log"), lvl)

	mu.Lock()
	logger = l
	mu.Unlock()
	return l, nil
}

// L returns the current CLI logger
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Log writes a debug log message
func Log(format string, v ...interface{}) {
	L().Sugar().Debugf(format, v...)
}

// LogError writes an error log message
func LogError(err error, format string, v ...interface{}) {
	L().Error(fmt.Sprintf(format, v...), zap.Error(err))
}

// CloseLog flushes the log file
func CloseLog() {
	_ = L().Sync()
}
