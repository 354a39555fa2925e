package preset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a preset file format.
type Format int

const (
	// FormatJSON is an indented JSON object.
	FormatJSON Format = iota

	// FormatYAML is a YAML mapping.
	FormatYAML
)

// ErrUnknownFormat is returned for unsupported formats and file extensions.
var ErrUnknownFormat = errors.New("preset: unknown format")

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension: .json, .yaml
// or .yml.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Encode writes p to w.
func Encode(w io.Writer, p Preset, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("preset: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&p); err != nil {
			return fmt.Errorf("preset: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("preset: encode yaml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// Decode reads a preset from r. Unknown keys are rejected.
func Decode(r io.Reader, f Format) (Preset, error) {
	var p Preset
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			return Preset{}, fmt.Errorf("preset: decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil {
			return Preset{}, fmt.Errorf("preset: decode yaml: %w", err)
		}
	default:
		return Preset{}, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	return p, nil
}
