package sim

import (
	"errors"
	"fmt"
)

// ErrSimulationBoundExceeded is returned when a run hits its iteration ceiling.
// On valid input every engine terminates well below the ceiling, so seeing this
// error means an engine defect, not a caller mistake.
var ErrSimulationBoundExceeded = errors.New("simulation iteration bound exceeded")

// ValidationError reports malformed process input.
// Index is the offending element, or -1 for collection-level problems.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid processes: %s", e.Reason)
	}
	return fmt.Sprintf("invalid process %d: %s %s", e.Index, e.Field, e.Reason)
}

// ConfigurationError reports invalid policy configuration.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// IsConfigurationError reports whether err wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var c *ConfigurationError
	return errors.As(err, &c)
}
