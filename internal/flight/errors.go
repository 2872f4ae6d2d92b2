package flight

import (
	"fmt"

	"github.com/san-kum/trajsim/internal/dynamo"
)

// ConfigError describes one rejected configuration field. It unwraps to
// dynamo.ErrInvalidConfiguration.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("flight: invalid %s = %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return dynamo.ErrInvalidConfiguration
}
