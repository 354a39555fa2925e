package gpuatlas

import (
	"log/slog"

	"github.com/gogpu/ascii/internal/logging"
)

var logger logging.Slot

// SetLogger sets the logger for texture uploads. Pass nil to silence it.
func SetLogger(l *slog.Logger) { logger.Store(l) }

func slogger() *slog.Logger { return logger.Load() }
