package optim

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrUnknownOptimizer = errors.New("unknown optimizer type")
	ErrStateCorrupted   = errors.New("optimizer state stream truncated or malformed")
	ErrStateMismatch    = errors.New("optimizer state type mismatch")
)

// ConfigurationError reports an unknown or invalid configuration token
// reaching SetProperty or the factory.
type ConfigurationError struct {
	Token   string // The offending token as supplied by the caller
	Details string // Additional details
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("invalid configuration token %q: %s", e.Token, e.Details)
	}
	return fmt.Sprintf("invalid configuration token %q", e.Token)
}
