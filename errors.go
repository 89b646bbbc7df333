package kalla

import (
	"errors"
	"fmt"
)

// ErrEmptyName is raised (as a panic value) when a key is declared with an empty name.
var ErrEmptyName = errors.New("key name must not be empty")

// ErrPrefixPattern is returned when a prefix discovery pattern does not
// contain exactly one capture group.
var ErrPrefixPattern = errors.New("pattern must contain exactly one capture group")

// MissingConfigError is returned by Require when a key resolves to nothing
// after the full tier walk, including any declared default. It carries both
// derived spellings so operators can set the value without consulting code.
type MissingConfigError struct {
	Property string
	Env      string
}

// Error implements the error interface.
func (e *MissingConfigError) Error() string {
	return fmt.Sprintf("missing configuration: set property %q or environment variable %q", e.Property, e.Env)
}
