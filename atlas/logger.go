package atlas

import (
	"log/slog"

	"github.com/gogpu/ascii/internal/logging"
)

var logger logging.Slot

// SetLogger sets the logger for atlas builds. Pass nil to silence it.
// The ascii package forwards its own SetLogger here.
func SetLogger(l *slog.Logger) { logger.Store(l) }

// slogger returns the current package logger.
func slogger() *slog.Logger { return logger.Load() }
