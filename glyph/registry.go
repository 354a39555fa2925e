package glyph

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// Registry maps font names to loaded fonts.
//
// Registry is safe for concurrent use. Loading may happen on any
// goroutine; handing a loaded font to a render session must still go
// through the session's event queue.
type Registry struct {
	mu    sync.RWMutex
	fonts map[string]*Font
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fonts: make(map[string]*Font)}
}

// Register stores f under name, replacing any previous font.
func (r *Registry) Register(name string, f *Font) error {
	if name == "" {
		return ErrEmptyName
	}
	if f == nil {
		return fmt.Errorf("glyph: nil font for %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.fonts[name]; ok && old != f {
		_ = old.Close()
	}
	r.fonts[name] = f
	return nil
}

// Load reads the font file at path and registers it under name.
func (r *Registry) Load(name, path string) (*Font, error) {
	f, err := NewFontFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: load %q: %w", name, err)
	}
	if err := r.Register(name, f); err != nil {
		return nil, err
	}
	return f, nil
}

// LoadDir registers every .ttf and .otf file in dir under its base name
// without extension. Files that fail to parse are reported together;
// the others stay registered.
func (r *Registry) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("glyph: read font dir: %w", err)
	}

	var errs []error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".ttf" && ext != ".otf" {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		if _, err := r.Load(name, filepath.Join(dir, e.Name())); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the font registered under name.
func (r *Registry) Lookup(name string) (*Font, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.fonts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
	}
	return f, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.fonts))
	for name := range r.fonts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered fonts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.fonts)
}
