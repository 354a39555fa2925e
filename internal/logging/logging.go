// Package logging holds the silent slog handler shared by the ascii
// sub-packages and a small atomic logger slot each package embeds.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// Nop returns a logger that discards all output.
func Nop() *slog.Logger { return slog.New(nopHandler{}) }

// Slot stores a logger that may be swapped concurrently with use.
// The zero value logs nothing.
type Slot struct {
	p atomic.Pointer[slog.Logger]
}

// Load returns the stored logger, or a silent one if none was stored.
func (s *Slot) Load() *slog.Logger {
	if l := s.p.Load(); l != nil {
		return l
	}
	return Nop()
}

// Store replaces the logger. Passing nil restores silent behavior.
func (s *Slot) Store(l *slog.Logger) {
	if l == nil {
		l = Nop()
	}
	s.p.Store(l)
}
