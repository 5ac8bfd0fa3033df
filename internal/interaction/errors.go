package interaction

import (
	"errors"
	"fmt"
)

var (
	ErrAnchorUnset     = errors.New("anchor is not set")
	ErrInvalidRadius   = errors.New("radius must be positive")
	ErrInvalidInterval = errors.New("interval must be positive")
)

// ConfigurationError reports a scanner that cannot start.
type ConfigurationError struct {
	Object string // owning GameObject name
	Err    error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("interaction scanner on %q: %v", e.Object, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
