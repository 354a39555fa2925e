package grid

import (
	"log/slog"

	"github.com/gogpu/ascii/internal/logging"
)

var logger logging.Slot

// SetLogger sets the logger for grid recomputation. Pass nil to silence it.
func SetLogger(l *slog.Logger) { logger.Store(l) }

func slogger() *slog.Logger { return logger.Load() }
