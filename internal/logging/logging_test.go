package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs() should return nopHandler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() should return nopHandler")
	}
}

func TestSlotZeroValueSilent(t *testing.T) {
	var s Slot
	l := s.Load()
	if l == nil {
		t.Fatal("Load() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("zero Slot should be silent")
	}
}

func TestSlotStore(t *testing.T) {
	var s Slot
	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s.Store(custom)
	if s.Load() != custom {
		t.Fatal("Load() did not return stored logger")
	}
	s.Load().Debug("atlas rebuilt", "cols", 4)
	if !strings.Contains(buf.String(), "atlas rebuilt") {
		t.Errorf("log output = %q, want message", buf.String())
	}

	s.Store(nil)
	if s.Load().Enabled(context.Background(), slog.LevelError) {
		t.Error("Store(nil) should restore silent logger")
	}
}
