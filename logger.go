package ascii

import (
	"log/slog"

	"github.com/gogpu/ascii/atlas"
	"github.com/gogpu/ascii/grid"
	"github.com/gogpu/ascii/integration/gpuatlas"
	"github.com/gogpu/ascii/internal/logging"
)

var logger logging.Slot

// SetLogger configures the logger for ascii and all its sub-packages.
// By default, ascii produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use. Pass nil to disable logging.
//
// Log levels used by ascii:
//   - [slog.LevelDebug]: atlas rebuilds, grid recomputation, texture uploads
//   - [slog.LevelInfo]: font switches and queued event batches
//   - [slog.LevelWarn]: characters missing from the font, rejected events
//
// Example:
//
//	ascii.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logger.Store(l)
	atlas.SetLogger(l)
	grid.SetLogger(l)
	gpuatlas.SetLogger(l)
}

// Logger returns the current logger used by ascii.
func Logger() *slog.Logger {
	return logger.Load()
}
