package ascii

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ascii package.
var (
	// ErrNilRegistry is returned by NewSession without a font registry.
	ErrNilRegistry = errors.New("ascii: nil font registry")

	// ErrNilFont is returned when a FontLoaded event carries no font.
	ErrNilFont = errors.New("ascii: nil font")

	// ErrUnknownEvent is returned by Flush for event types it cannot apply.
	ErrUnknownEvent = errors.New("ascii: unknown event")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ascii: invalid config field %s: %s", e.Field, e.Reason)
}
